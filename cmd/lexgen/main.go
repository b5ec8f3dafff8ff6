// Command lexgen builds lexical analyzers from regex token specs: add
// patterns, compile them to an NFA/DFA pair, inspect the automata, and
// emit a standalone Go scanner, either as one-shot subcommands or from
// an interactive REPL that mirrors the original program's numbered menu.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/KromDaniel/lexgen/internal/xlog"
	"github.com/KromDaniel/lexgen/metrics"
)

// init mirrors the retrieved corpus's lib/automaxprocs wrapper: honor
// any container CPU quota before the CLI does any compilation work.
func init() {
	maxprocs.Set()
}

var cli struct {
	Verbose bool `help:"Enable trace logging to stderr." short:"v"`

	Build    buildCmd    `cmd:"" help:"Compile token specs from a YAML file and report automaton sizes."`
	Tokenize tokenizeCmd `cmd:"" help:"Compile token specs and tokenize an input file."`
	Generate generateCmd `cmd:"" help:"Compile token specs and emit a standalone Go scanner."`
	Repl     replCmd     `cmd:"" help:"Start an interactive session." name:"repl"`
}

// cliContext is bound into every command's Run via kong.Bind, the same
// pattern the retrieved corpus's own multi-command CLI uses to thread a
// shared logger and metrics recorder to leaf commands without a global.
type cliContext struct {
	log *xlog.Logger
	rec *metrics.Recorder
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("lexgen"),
		kong.Description("Regex-to-DFA lexical analyzer generator."),
		kong.UsageOnError(),
	)

	cctx := &cliContext{
		log: xlog.New("lexgen", cli.Verbose),
		rec: metrics.NewRecorder(prometheus.DefaultRegisterer),
	}

	if err := ctx.Run(cctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
