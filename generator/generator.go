// Package generator implements the Generator API of SPEC_FULL.md §4.7:
// accept a list of (name, pattern) token specs, compile them into a
// combined NFA/DFA, and expose read-only views plus a convenience
// whole-input acceptance check.
package generator

import (
	"time"

	"github.com/KromDaniel/lexgen/automaton"
	"github.com/KromDaniel/lexgen/metrics"
	"github.com/KromDaniel/lexgen/scanner"
)

// Generator accumulates TokenSpecs and compiles them into an automaton
// pair on Build. It is not safe for concurrent use while specs are being
// added or while Build is running; the automata it produces are
// immutable and safe to share once Build returns successfully.
type Generator struct {
	specs []automaton.TokenSpec
	nfa   *automaton.NFA
	dfa   *automaton.DFA
}

// New creates an empty Generator.
func New() *Generator {
	return &Generator{}
}

// AddToken appends a TokenSpec. Its priority is its position in the
// eventual spec list at Build time (lower index wins ties).
func (g *Generator) AddToken(name, pattern string) {
	g.specs = append(g.specs, automaton.TokenSpec{Name: name, Pattern: pattern})
}

// Specs returns a copy of the currently registered token specs, in
// declaration order.
func (g *Generator) Specs() []automaton.TokenSpec {
	out := make([]automaton.TokenSpec, len(g.specs))
	copy(out, g.specs)
	return out
}

// Build compiles every registered spec into a combined NFA and DFA. On
// failure, no automaton is produced and any previously built automaton
// (from an earlier successful Build) is left untouched — per
// SPEC_FULL.md §4.7, Build is eager and non-incremental, but a failed
// call does not roll back the spec list itself. rec may be nil.
func (g *Generator) Build(rec *metrics.Recorder) error {
	if len(g.specs) == 0 {
		return automaton.ErrNoPatterns
	}

	start := time.Now()

	nfas := make([]*automaton.NFA, len(g.specs))
	names := make([]string, len(g.specs))
	for i, spec := range g.specs {
		postfix, err := automaton.ToPostfix(spec.Pattern)
		if err != nil {
			return &automaton.BuildError{TokenName: spec.Name, Pattern: spec.Pattern, Err: err}
		}
		nfa, err := automaton.BuildNFA(postfix)
		if err != nil {
			return &automaton.BuildError{TokenName: spec.Name, Pattern: spec.Pattern, Err: err}
		}
		nfas[i] = nfa
		names[i] = spec.Name
	}

	combined := automaton.Combine(nfas, names)
	dfa := automaton.BuildDFA(combined)

	g.nfa = combined
	g.dfa = dfa

	rec.ObserveBuild(time.Since(start), combined.NumStates(), dfa.NumStates())

	return nil
}

// NFA returns the combined NFA from the most recent successful Build, or
// nil if Build has never succeeded.
func (g *Generator) NFA() *automaton.NFA { return g.nfa }

// DFA returns the DFA from the most recent successful Build, or nil if
// Build has never succeeded.
func (g *Generator) DFA() *automaton.DFA { return g.dfa }

// Accepts runs the scanner over input and reports whether the entire
// input tokenizes without a single lexical error. This is distinct from
// "matches a single token": Accepts is a whole-input, multi-token check.
// It returns false if Build has not yet succeeded.
func (g *Generator) Accepts(input string, rec *metrics.Recorder) bool {
	if g.dfa == nil {
		return false
	}
	_, errs := scanner.Scan(g.dfa, input, rec)
	return len(errs) == 0
}
