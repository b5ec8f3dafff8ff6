package emitter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KromDaniel/lexgen/automaton"
)

func buildTestDFA(t *testing.T, specs []automaton.TokenSpec) *automaton.DFA {
	t.Helper()
	nfas := make([]*automaton.NFA, len(specs))
	names := make([]string, len(specs))
	for i, s := range specs {
		postfix, err := automaton.ToPostfix(s.Pattern)
		if err != nil {
			t.Fatalf("ToPostfix(%q): %v", s.Pattern, err)
		}
		nfa, err := automaton.BuildNFA(postfix)
		if err != nil {
			t.Fatalf("BuildNFA(%q): %v", s.Pattern, err)
		}
		nfas[i] = nfa
		names[i] = s.Name
	}
	return automaton.BuildDFA(automaton.Combine(nfas, names))
}

func TestGenerateProducesValidGoSource(t *testing.T) {
	dfa := buildTestDFA(t, []automaton.TokenSpec{
		{Name: "KW_IF", Pattern: "if"},
		{Name: "PLUS", Pattern: "+"},
	})

	dir := t.TempDir()
	out := filepath.Join(dir, "lexer.go")

	if err := Generate(dfa, Config{Package: "lexer", OutputFile: out}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	src := string(data)

	for _, want := range []string{
		"package lexer",
		"type Token struct",
		"type LexError struct",
		"func Tokenize(input string) ([]Token, []LexError)",
		"var transitions",
		"var acceptLabels",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q\n--- source ---\n%s", want, src)
		}
	}
}

func TestGenerateAcceptTableCarriesLabels(t *testing.T) {
	dfa := buildTestDFA(t, []automaton.TokenSpec{
		{Name: "KW_IF", Pattern: "if"},
	})

	dir := t.TempDir()
	out := filepath.Join(dir, "lexer.go")
	if err := Generate(dfa, Config{Package: "lexer", OutputFile: out}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	if !strings.Contains(string(data), `"KW_IF"`) {
		t.Error("expected generated accept table to reference KW_IF")
	}
}
