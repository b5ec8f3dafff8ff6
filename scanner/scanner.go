// Package scanner implements the interpreted runtime semantics a
// generator-built DFA is meant to realize: longest-match, priority-tiebreak
// tokenization with restart-on-failure error recovery.
package scanner

import (
	"fmt"

	"github.com/KromDaniel/lexgen/automaton"
	"github.com/KromDaniel/lexgen/metrics"
)

// Token is one recognized lexeme, tagged with the winning token type and
// its 1-based line/column position in the original input.
type Token struct {
	Type   string
	Lexeme string
	Line   int
	Column int
}

// LexError reports a byte that could not extend or start any accepted
// prefix. The scanner recovers by skipping it and continuing.
type LexError struct {
	Line   int
	Column int
	Byte   byte
}

func (e LexError) Error() string {
	return fmt.Sprintf("lexical error at %d:%d: unexpected byte %q", e.Line, e.Column, e.Byte)
}

// Scan tokenizes input against dfa using the maximal-munch, priority
// tie-break algorithm of SPEC_FULL.md §4.6. Whitespace (space, tab,
// newline) outside any accepted prefix is skipped silently; any other
// byte with no accepted prefix is reported as a LexError and skipped.
// rec may be nil.
func Scan(dfa *automaton.DFA, input string, rec *metrics.Recorder) ([]Token, []LexError) {
	var tokens []Token
	var errs []LexError

	pos := 0
	line, col := 1, 1

	advance := func(b byte) {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	for pos < len(input) {
		state := dfa.Start()
		lastAcceptEnd := -1
		var lastLabel automaton.Label

		i := pos
		for i < len(input) {
			next := dfa.Step(state, automaton.Symbol(input[i]))
			if next == automaton.DeadState {
				break
			}
			state = next
			i++
			if l, ok := dfa.Label(state); ok {
				lastAcceptEnd = i
				lastLabel = l
			}
		}

		if lastAcceptEnd == -1 {
			b := input[pos]
			if isWhitespace(b) {
				advance(b)
				pos++
				continue
			}
			errs = append(errs, LexError{Line: line, Column: col, Byte: b})
			rec.ObserveLexicalError()
			advance(b)
			pos++
			continue
		}

		lexeme := input[pos:lastAcceptEnd]
		tokLine, tokCol := line, col
		for j := pos; j < lastAcceptEnd; j++ {
			advance(input[j])
		}

		tokens = append(tokens, Token{
			Type:   lastLabel.TokenName,
			Lexeme: lexeme,
			Line:   tokLine,
			Column: tokCol,
		})
		rec.ObserveToken(lastLabel.TokenName)
		pos = lastAcceptEnd
	}

	return tokens, errs
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}
