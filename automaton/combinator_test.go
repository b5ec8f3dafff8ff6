package automaton

import "testing"

func buildOrFatal(t *testing.T, postfix string) *NFA {
	t.Helper()
	nfa, err := BuildNFA(postfix)
	if err != nil {
		t.Fatalf("BuildNFA(%q): %v", postfix, err)
	}
	return nfa
}

func TestCombinePreservesIndividualAcceptStates(t *testing.T) {
	// "if" and "identifier-ish" both accept "if" if built naively with a
	// shared accept identity; Combine must keep them distinct so each
	// retains its own label.
	kwIf := buildOrFatal(t, "if.")
	ident := buildOrFatal(t, "if.") // deliberately identical pattern, lower priority

	combined := Combine([]*NFA{kwIf, ident}, []string{"KEYWORD_IF", "IDENTIFIER"})

	dfa := BuildDFA(combined)
	state := dfa.Start()
	for i := 0; i < len("if"); i++ {
		next := dfa.Step(state, Symbol("if"[i]))
		if next == DeadState {
			t.Fatalf("dead-ended scanning \"if\" at byte %d", i)
		}
		state = next
	}
	label, ok := dfa.Label(state)
	if !ok {
		t.Fatal("expected accepting state after \"if\"")
	}
	if label.TokenName != "KEYWORD_IF" {
		t.Errorf("priority tie-break: got %q, want KEYWORD_IF (declared first)", label.TokenName)
	}
}

func TestCombinePriorityIsDeclarationOrder(t *testing.T) {
	// T1 = "ab" (priority 0), T2 = "ab" (priority 1): T1 must win.
	a := buildOrFatal(t, "ab.")
	b := buildOrFatal(t, "ab.")
	combined := Combine([]*NFA{a, b}, []string{"T1", "T2"})
	dfa := BuildDFA(combined)

	state := dfa.Start()
	for i := 0; i < len("ab"); i++ {
		state = dfa.Step(state, Symbol("ab"[i]))
	}
	label, ok := dfa.Label(state)
	if !ok || label.TokenName != "T1" {
		t.Errorf("got label %+v, ok=%v, want T1", label, ok)
	}

	// Reversed declaration order flips the winner.
	combined2 := Combine([]*NFA{a, b}, []string{"T2", "T1"})
	dfa2 := BuildDFA(combined2)
	state2 := dfa2.Start()
	for i := 0; i < len("ab"); i++ {
		state2 = dfa2.Step(state2, Symbol("ab"[i]))
	}
	label2, ok := dfa2.Label(state2)
	if !ok || label2.TokenName != "T2" {
		t.Errorf("got label %+v, ok=%v, want T2", label2, ok)
	}
}

func TestCombineNumStatesIsSumPlusOne(t *testing.T) {
	a := buildOrFatal(t, "a")
	b := buildOrFatal(t, "b")
	combined := Combine([]*NFA{a, b}, []string{"A", "B"})
	if combined.NumStates() != a.NumStates()+b.NumStates()+1 {
		t.Errorf("NumStates() = %d, want %d", combined.NumStates(), a.NumStates()+b.NumStates()+1)
	}
}
