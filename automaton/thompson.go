package automaton

// fragment is a piece of an in-progress NFA: a start state and the set of
// states currently accepting for that piece. Concatenation extends an
// existing fragment's accept states with epsilon edges rather than
// re-numbering anything, since all fragments share one arena (the *NFA
// they were built in).
type fragment struct {
	start  int
	accept []int
}

// BuildNFA runs Thompson's construction over a postfix operator stream
// (as produced by ToPostfix) and returns the resulting NFA. Accepting
// states are left unlabeled; label assignment happens in Combine.
//
// Any stack-depth mismatch — an operator with too few operands, or more
// than one fragment left on the stack at the end — is MalformedRegex,
// per SPEC_FULL.md §4.2's postcondition.
func BuildNFA(postfix string) (*NFA, error) {
	n := newNFA()
	var stack []fragment

	pop := func() (fragment, bool) {
		if len(stack) == 0 {
			return fragment{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	for i := 0; i < len(postfix); i++ {
		c := postfix[i]
		switch c {
		case opStar:
			a, ok := pop()
			if !ok {
				return nil, ErrMalformedRegex
			}
			stack = append(stack, n.star(a))
		case opUnion:
			b, ok1 := pop()
			a, ok2 := pop()
			if !ok1 || !ok2 {
				return nil, ErrMalformedRegex
			}
			stack = append(stack, n.union(a, b))
		case opConcat:
			b, ok1 := pop()
			a, ok2 := pop()
			if !ok1 || !ok2 {
				return nil, ErrMalformedRegex
			}
			stack = append(stack, n.concat(a, b))
		default:
			stack = append(stack, n.symbol(Symbol(c)))
		}
	}

	if len(stack) != 1 {
		return nil, ErrMalformedRegex
	}

	final := stack[0]
	n.start = final.start
	for _, s := range final.accept {
		n.accept[s] = Label{}
	}
	return n, nil
}

// symbol builds a two-state fragment q0 --sym--> q1.
func (n *NFA) symbol(sym Symbol) fragment {
	q0 := n.addState()
	q1 := n.addState()
	n.addSymbol(q0, q1, sym)
	return fragment{start: q0, accept: []int{q1}}
}

// star builds a new start/accept pair around a, with epsilon bypass and
// epsilon loop-back from a's accept states to a's start.
func (n *NFA) star(a fragment) fragment {
	s := n.addState()
	f := n.addState()
	n.addEpsilon(s, a.start)
	n.addEpsilon(s, f)
	for _, acc := range a.accept {
		n.addEpsilon(acc, a.start)
		n.addEpsilon(acc, f)
	}
	return fragment{start: s, accept: []int{f}}
}

// union builds a new start state with epsilon edges to both a and b, and
// a new accept state reached by epsilon from both fragments' accepts.
func (n *NFA) union(a, b fragment) fragment {
	s := n.addState()
	f := n.addState()
	n.addEpsilon(s, a.start)
	n.addEpsilon(s, b.start)
	for _, acc := range a.accept {
		n.addEpsilon(acc, f)
	}
	for _, acc := range b.accept {
		n.addEpsilon(acc, f)
	}
	return fragment{start: s, accept: []int{f}}
}

// concat wires every accept state of a to b's start with an epsilon edge;
// the result's accept states are exactly b's.
func (n *NFA) concat(a, b fragment) fragment {
	for _, acc := range a.accept {
		n.addEpsilon(acc, b.start)
	}
	return fragment{start: a.start, accept: b.accept}
}
