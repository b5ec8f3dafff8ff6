package automaton

// Combine merges the per-token NFAs built by BuildNFA into a single NFA
// with a fresh start state epsilon-connected to each Nᵢ's start state.
// Each original accepting state keeps its own identity — accepting states
// are never merged together — and is labeled with the token name at the
// same index and that index as its priority (SPEC_FULL.md §4.3).
//
// Because each input NFA was built in its own arena, this is the one
// place state ids must be renumbered: every state of nfas[i] is copied
// into the combined arena at a fixed per-NFA offset.
func Combine(nfas []*NFA, names []string) *NFA {
	combined := newNFA()
	start := combined.addState()
	combined.start = start

	for i, src := range nfas {
		offset := combined.numStates
		for j := 0; j < src.numStates; j++ {
			combined.addState()
		}
		src.EachTransition(func(from, to int, sym Symbol, isEpsilon bool) {
			if isEpsilon {
				combined.addEpsilon(from+offset, to+offset)
			} else {
				combined.addSymbol(from+offset, to+offset, sym)
			}
		})
		combined.addEpsilon(start, src.start+offset)

		for _, acc := range src.AcceptingStates() {
			combined.accept[acc+offset] = Label{TokenName: names[i], Priority: i}
		}
	}

	return combined
}
