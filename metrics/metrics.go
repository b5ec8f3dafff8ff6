// Package metrics wires build- and scan-time observability into
// Prometheus collectors, the way the retrieved corpus's own service
// binaries (syncthing's cmd/stcrashreceiver, cmd/stdiscosrv, ...) do it.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder groups the counters, gauges, and histograms the generator and
// scanner report against. A nil *Recorder is valid: every method is a
// no-op, so automaton/generator/scanner never need a build tag or an
// interface to stay independent of whether metrics are wired up.
type Recorder struct {
	buildDuration prometheus.Histogram
	nfaStates     prometheus.Gauge
	dfaStates     prometheus.Gauge
	tokensEmitted *prometheus.CounterVec
	lexicalErrors prometheus.Counter
}

// NewRecorder creates a Recorder and, if reg is non-nil, registers its
// collectors against reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lexgen_build_duration_seconds",
			Help:    "Wall time of Generator.Build calls.",
			Buckets: prometheus.DefBuckets,
		}),
		nfaStates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lexgen_nfa_states",
			Help: "Number of states in the most recently built combined NFA.",
		}),
		dfaStates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lexgen_dfa_states",
			Help: "Number of states in the most recently built DFA.",
		}),
		tokensEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lexgen_tokens_emitted_total",
			Help: "Tokens emitted by the scanner, labeled by token type.",
		}, []string{"token"}),
		lexicalErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lexgen_lexical_errors_total",
			Help: "Lexical errors reported by the scanner during recovery.",
		}),
	}
	if reg != nil {
		reg.MustRegister(r.buildDuration, r.nfaStates, r.dfaStates, r.tokensEmitted, r.lexicalErrors)
	}
	return r
}

// ObserveBuild records one Generator.Build call's duration and the
// resulting automaton sizes.
func (r *Recorder) ObserveBuild(d time.Duration, nfaStates, dfaStates int) {
	if r == nil {
		return
	}
	r.buildDuration.Observe(d.Seconds())
	r.nfaStates.Set(float64(nfaStates))
	r.dfaStates.Set(float64(dfaStates))
}

// ObserveToken records one emitted token of the given type.
func (r *Recorder) ObserveToken(tokenType string) {
	if r == nil {
		return
	}
	r.tokensEmitted.WithLabelValues(tokenType).Inc()
}

// ObserveLexicalError records one scanner error-recovery event.
func (r *Recorder) ObserveLexicalError() {
	if r == nil {
		return
	}
	r.lexicalErrors.Inc()
}
