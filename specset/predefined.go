package specset

import (
	"strings"

	"github.com/KromDaniel/lexgen/automaton"
)

var (
	lowerLetters = charRange('a', 'z')
	upperLetters = charRange('A', 'Z')
	digits       = charRange('0', '9')
)

func charRange(lo, hi byte) []byte {
	out := make([]byte, 0, int(hi-lo)+1)
	for c := lo; c <= hi; c++ {
		out = append(out, c)
	}
	return out
}

// altGroup builds a parenthesized union pattern over chars, the way the
// original program's predefined-pattern loader expands character-class
// shorthand by hand: "(a|b|...|z)". The grammar has no escaping or
// classes (SPEC_FULL.md Non-goals), so this is the only way to express
// "one of these bytes".
func altGroup(chars []byte) string {
	parts := make([]string, len(chars))
	for i, c := range chars {
		parts[i] = string(c)
	}
	return "(" + strings.Join(parts, "|") + ")"
}

func identifierPattern() string {
	letters := append(append([]byte{}, lowerLetters...), upperLetters...)
	first := altGroup(letters)
	rest := altGroup(append(append([]byte{}, letters...), digits...))
	return first + rest + "*"
}

func numberPattern() string {
	return altGroup(digits) + altGroup(digits) + "*"
}

// CLikePredefined returns the built-in C-like token set the original
// program's "Load Predefined Patterns (C-like Language)" menu item
// installed: keywords first (so they outrank the generic identifier
// pattern by priority on ties), then identifiers, numbers, arithmetic
// and relational operators, and delimiters.
//
// Three of the original set's tokens — MULTIPLY ("*"), LPAREN ("("), and
// RPAREN (")") — are not representable here: this grammar's CHAR atom
// excludes exactly the four metacharacters '(', ')', '|', '*' (§4.1),
// and there is no escape syntax to reintroduce them as literals. They
// are omitted rather than silently miscompiled.
func CLikePredefined() []automaton.TokenSpec {
	return []automaton.TokenSpec{
		{Name: "KEYWORD_IF", Pattern: "if"},
		{Name: "KEYWORD_ELSE", Pattern: "else"},
		{Name: "KEYWORD_WHILE", Pattern: "while"},
		{Name: "KEYWORD_FOR", Pattern: "for"},
		{Name: "KEYWORD_INT", Pattern: "int"},
		{Name: "KEYWORD_FLOAT", Pattern: "float"},
		{Name: "KEYWORD_RETURN", Pattern: "return"},
		{Name: "IDENTIFIER", Pattern: identifierPattern()},
		{Name: "NUMBER", Pattern: numberPattern()},
		{Name: "PLUS", Pattern: "+"},
		{Name: "MINUS", Pattern: "-"},
		{Name: "DIVIDE", Pattern: "/"},
		{Name: "ASSIGN", Pattern: "="},
		{Name: "LESS_THAN", Pattern: "<"},
		{Name: "GREATER_THAN", Pattern: ">"},
		{Name: "SEMICOLON", Pattern: ";"},
		{Name: "LBRACE", Pattern: "{"},
		{Name: "RBRACE", Pattern: "}"},
	}
}
