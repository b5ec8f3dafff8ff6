package main

import (
	"fmt"
	"os"

	"github.com/KromDaniel/lexgen/emitter"
	"github.com/KromDaniel/lexgen/generator"
	"github.com/KromDaniel/lexgen/scanner"
	"github.com/KromDaniel/lexgen/specset"
)

// specSource is the --specs/--predefined pair shared by every one-shot
// subcommand: an explicit YAML file takes precedence, and falling back
// to the built-in C-like set is only valid when no file was given.
type specSource struct {
	Specs      string `help:"Path to a YAML token spec file." type:"path"`
	Predefined bool   `help:"Use the built-in C-like predefined token set."`
}

func (s specSource) build(cctx *cliContext) (*generator.Generator, error) {
	g := generator.New()

	switch {
	case s.Specs != "":
		specs, err := specset.Load(s.Specs)
		if err != nil {
			return nil, err
		}
		for _, sp := range specs {
			g.AddToken(sp.Name, sp.Pattern)
		}
	case s.Predefined:
		for _, sp := range specset.CLikePredefined() {
			g.AddToken(sp.Name, sp.Pattern)
		}
	default:
		return nil, fmt.Errorf("one of --specs or --predefined is required")
	}

	cctx.log.Section("build")
	if err := g.Build(cctx.rec); err != nil {
		return nil, err
	}
	cctx.log.Log("built %d-state NFA, %d-state DFA from %d token specs",
		g.NFA().NumStates(), g.DFA().NumStates(), len(g.Specs()))
	return g, nil
}

type buildCmd struct {
	specSource
}

func (c *buildCmd) Run(cctx *cliContext) error {
	g, err := c.build(cctx)
	if err != nil {
		return err
	}
	fmt.Printf("tokens: %d\n", len(g.Specs()))
	fmt.Printf("nfa states: %d\n", g.NFA().NumStates())
	fmt.Printf("dfa states: %d\n", g.DFA().NumStates())
	return nil
}

type tokenizeCmd struct {
	specSource
	Input string `arg:"" help:"Path to the input file to tokenize." type:"path"`
}

func (c *tokenizeCmd) Run(cctx *cliContext) error {
	g, err := c.build(cctx)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	tokens, errs := scanner.Scan(g.DFA(), string(data), cctx.rec)
	for _, t := range tokens {
		fmt.Printf("%d:%d\t%s\t%q\n", t.Line, t.Column, t.Type, t.Lexeme)
	}
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d lexical error(s)", len(errs))
	}
	return nil
}

type generateCmd struct {
	specSource
	Package string `help:"Package name for the generated scanner." default:"lexer"`
	Output  string `help:"Output file path for the generated scanner." arg:""`
}

func (c *generateCmd) Run(cctx *cliContext) error {
	g, err := c.build(cctx)
	if err != nil {
		return err
	}
	return emitter.Generate(g.DFA(), emitter.Config{
		Package:    c.Package,
		OutputFile: c.Output,
	})
}
