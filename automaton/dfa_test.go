package automaton

import "testing"

func TestDFAStepDeadState(t *testing.T) {
	nfa := buildOrFatal(t, "a")
	dfa := BuildDFA(nfa)
	if got := dfa.Step(dfa.Start(), Symbol('z')); got != DeadState {
		t.Errorf("Step on unrelated symbol = %d, want DeadState", got)
	}
}

func TestDFAAcceptsSingleChar(t *testing.T) {
	nfa := buildOrFatal(t, "a")
	dfa := BuildDFA(nfa)
	next := dfa.Step(dfa.Start(), Symbol('a'))
	if next == DeadState {
		t.Fatal("expected a live transition on 'a'")
	}
	if !dfa.IsAccepting(next) {
		t.Error("expected accepting state after consuming 'a'")
	}
}

func TestDFAAcceptingStatesSorted(t *testing.T) {
	a := buildOrFatal(t, "a")
	b := buildOrFatal(t, "b")
	combined := Combine([]*NFA{a, b}, []string{"A", "B"})
	dfa := BuildDFA(combined)

	states := dfa.AcceptingStates()
	for i := 1; i < len(states); i++ {
		if states[i-1] >= states[i] {
			t.Errorf("AcceptingStates() not strictly increasing: %v", states)
			break
		}
	}
}

func TestDFAStringDoesNotPanic(t *testing.T) {
	nfa := buildOrFatal(t, "01|01|*.")
	dfa := BuildDFA(nfa)
	if dfa.String() == "" {
		t.Error("expected non-empty DFA dump")
	}
	if nfa.String() == "" {
		t.Error("expected non-empty NFA dump")
	}
}
