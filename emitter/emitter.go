// Package emitter is the code-emission collaborator SPEC_FULL.md §4.9
// describes: it consumes a built *automaton.DFA through its read-only
// views and generates standalone Go source realizing the scanner
// semantics of SPEC_FULL.md §4.6, using github.com/dave/jennifer the
// same way the teacher project's internal/compiler package generates
// matcher code: build a jen.File, save it, then reformat with go/format.
package emitter

import (
	"fmt"
	"go/format"
	"os"

	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/lexgen/automaton"
	"github.com/KromDaniel/lexgen/internal/codegen"
)

// Config controls the generated file's package name and destination.
type Config struct {
	Package    string
	OutputFile string
}

// Generate writes a standalone scanner for dfa to cfg.OutputFile.
func Generate(dfa *automaton.DFA, cfg Config) error {
	f := jen.NewFile(cfg.Package)
	f.Comment("Code generated by lexgen. DO NOT EDIT.")
	f.Line()

	f.Type().Id("Token").Struct(
		jen.Id("Type").String(),
		jen.Id("Lexeme").String(),
		jen.Id("Line").Int(),
		jen.Id("Column").Int(),
	)
	f.Line()

	f.Type().Id("LexError").Struct(
		jen.Id("Line").Int(),
		jen.Id("Column").Int(),
		jen.Id("Byte").Byte(),
	)
	f.Line()

	f.Func().Params(jen.Id("e").Id("LexError")).Id("Error").Params().String().Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit("lexical error at %d:%d: unexpected byte %q"),
			jen.Id("e").Dot("Line"),
			jen.Id("e").Dot("Column"),
			jen.Id("e").Dot("Byte"),
		)),
	)
	f.Line()

	f.Add(transitionTableDecl(dfa))
	f.Line()
	f.Add(acceptTableDecl(dfa))
	f.Line()

	f.Func().Id("Tokenize").
		Params(jen.Id(codegen.InputName).String()).
		Params(jen.Index().Id("Token"), jen.Index().Id("LexError")).
		Block(tokenizeBody()...)

	if err := f.Save(cfg.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	if err := formatFile(cfg.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}
	return nil
}

// transitionTableDecl emits `var transitions = map[int]map[byte]int{...}`
// from the DFA's read-only transition view.
func transitionTableDecl(dfa *automaton.DFA) jen.Code {
	outer := jen.Dict{}
	for s := 0; s < dfa.NumStates(); s++ {
		inner := jen.Dict{}
		for _, sym := range dfa.Alphabet() {
			to := dfa.Step(s, sym)
			if to != automaton.DeadState {
				inner[jen.Lit(byte(sym))] = jen.Lit(to)
			}
		}
		if len(inner) == 0 {
			continue
		}
		outer[jen.Lit(s)] = jen.Map(jen.Byte()).Int().Values(inner)
	}
	return jen.Var().Id("transitions").Op("=").Map(jen.Int()).Map(jen.Byte()).Int().Values(outer)
}

// acceptTableDecl emits `var acceptLabels = map[int]string{...}` from the
// DFA's accepting-state labels, per SPEC_FULL.md §4.4's minimum-priority
// resolution already baked into dfa.Label.
func acceptTableDecl(dfa *automaton.DFA) jen.Code {
	dict := jen.Dict{}
	for _, s := range dfa.AcceptingStates() {
		label, _ := dfa.Label(s)
		dict[jen.Lit(s)] = jen.Lit(label.TokenName)
	}
	return jen.Var().Id("acceptLabels").Op("=").Map(jen.Int()).String().Values(dict)
}

// tokenizeBody generates the longest-match, priority-tiebreak,
// restart-on-failure loop of SPEC_FULL.md §4.6 against the transition
// and accept tables above.
func tokenizeBody() []jen.Code {
	i, state, next, ok := jen.Id("i"), jen.Id("state"), jen.Id("next"), jen.Id("ok")
	nextMap := jen.Id("nextMap")
	lastAcceptEnd, lastLabel, label := jen.Id("lastAcceptEnd"), jen.Id("lastLabel"), jen.Id("label")
	b := jen.Id("b")
	pos, line, col := jen.Id(codegen.PosName), jen.Id(codegen.LineName), jen.Id(codegen.ColumnName)
	tokens, errs := jen.Id(codegen.TokensName), jen.Id(codegen.ErrorsName)
	input := jen.Id(codegen.InputName)

	advanceOn := func(byteExpr *jen.Statement) jen.Code {
		return jen.If(byteExpr.Clone().Op("==").LitByte('\n')).Block(
			line.Clone().Op("++"),
			col.Clone().Op("=").Lit(1),
		).Else().Block(
			col.Clone().Op("++"),
		)
	}

	innerScan := jen.For(i.Clone().Op("<").Len(input)).Block(
		jen.List(nextMap, ok).Op(":=").Id("transitions").Index(state.Clone()),
		jen.If(jen.Op("!").Add(ok)).Block(jen.Break()),
		jen.List(next, ok).Op(":=").Add(nextMap).Index(input.Clone().Index(i.Clone())),
		jen.If(jen.Op("!").Add(ok)).Block(jen.Break()),
		state.Clone().Op("=").Add(next),
		i.Clone().Op("++"),
		jen.If(jen.List(label, ok).Op(":=").Id("acceptLabels").Index(state.Clone()), ok.Clone()).Block(
			lastAcceptEnd.Clone().Op("=").Add(i),
			lastLabel.Clone().Op("=").Add(label),
		),
	)

	errBranch := jen.Block(
		b.Clone().Op(":=").Add(input.Clone().Index(pos.Clone())),
		jen.If(b.Clone().Op("==").LitByte(' ').Op("||").Add(b.Clone()).Op("==").LitByte('\t').Op("||").Add(b.Clone()).Op("==").LitByte('\n')).Block(
			advanceOn(b.Clone()),
			pos.Clone().Op("++"),
			jen.Continue(),
		),
		errs.Clone().Op("=").Append(errs.Clone(), jen.Id("LexError").Values(jen.Dict{
			jen.Id("Line"):   line.Clone(),
			jen.Id("Column"): col.Clone(),
			jen.Id("Byte"):   b.Clone(),
		})),
		advanceOn(b.Clone()),
		pos.Clone().Op("++"),
		jen.Continue(),
	)

	emitBranch := jen.Block(
		jen.Id("lexeme").Op(":=").Add(input.Clone()).Index(pos.Clone().Op(":").Add(lastAcceptEnd.Clone())),
		jen.List(jen.Id("tokLine"), jen.Id("tokCol")).Op(":=").List(line.Clone(), col.Clone()),
		jen.For(jen.Id("j").Op(":=").Add(pos.Clone()), jen.Id("j").Op("<").Add(lastAcceptEnd.Clone()), jen.Id("j").Op("++")).Block(
			advanceOn(input.Clone().Index(jen.Id("j"))),
		),
		tokens.Clone().Op("=").Append(tokens.Clone(), jen.Id("Token").Values(jen.Dict{
			jen.Id("Type"):   lastLabel.Clone(),
			jen.Id("Lexeme"): jen.Id("lexeme"),
			jen.Id("Line"):   jen.Id("tokLine"),
			jen.Id("Column"): jen.Id("tokCol"),
		})),
		pos.Clone().Op("=").Add(lastAcceptEnd.Clone()),
	)

	outerLoop := jen.For(pos.Clone().Op("<").Len(input)).Block(
		state.Clone().Op(":=").Lit(0),
		lastAcceptEnd.Clone().Op(":=").Lit(-1),
		jen.Var().Add(lastLabel.Clone()).String(),
		i.Clone().Op(":=").Add(pos.Clone()),
		innerScan,
		jen.Line(),
		jen.If(lastAcceptEnd.Clone().Op("==").Lit(-1)).Add(errBranch).Else().Add(emitBranch),
	)

	return []jen.Code{
		jen.Var().Add(tokens.Clone()).Index().Id("Token"),
		jen.Var().Add(errs.Clone()).Index().Id("LexError"),
		pos.Clone().Op(":=").Lit(0),
		jen.List(line.Clone(), col.Clone()).Op(":=").List(jen.Lit(1), jen.Lit(1)),
		jen.Line(),
		outerLoop,
		jen.Line(),
		jen.Return(tokens.Clone(), errs.Clone()),
	}
}

func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	formatted, err := format.Source(src)
	if err != nil {
		return err
	}
	return os.WriteFile(path, formatted, 0o644)
}
