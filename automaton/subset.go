package automaton

import (
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// closureCacheSize bounds the epsilon-closure memoization cache used
// during BuildDFA. Combined NFAs from large predefined-pattern sets
// revisit the same state subsets many times during the worklist walk;
// this cache turns repeat lookups into an O(1) hit instead of a fresh
// BFS over the epsilon adjacency lists.
const closureCacheSize = 1024

// adjacency is a precomputed epsilon/symbol adjacency view of an NFA,
// built once per BuildDFA call so epsilonClosure and move don't have to
// scan the flat transition list on every worklist step.
type adjacency struct {
	epsilon map[int][]int
	symbol  map[int]map[Symbol][]int
}

func buildAdjacency(n *NFA) *adjacency {
	adj := &adjacency{
		epsilon: make(map[int][]int),
		symbol:  make(map[int]map[Symbol][]int),
	}
	n.EachTransition(func(from, to int, sym Symbol, isEpsilon bool) {
		if isEpsilon {
			adj.epsilon[from] = append(adj.epsilon[from], to)
			return
		}
		if adj.symbol[from] == nil {
			adj.symbol[from] = make(map[Symbol][]int)
		}
		adj.symbol[from][sym] = append(adj.symbol[from][sym], to)
	})
	return adj
}

// subsetBuilder holds the working state of one BuildDFA run: the source
// NFA's adjacency view and the epsilon-closure cache.
type subsetBuilder struct {
	nfa   *NFA
	adj   *adjacency
	cache *lru.Cache[string, []int]
}

func newSubsetBuilder(n *NFA) *subsetBuilder {
	// lru.New's only error case is a non-positive size, which
	// closureCacheSize never is.
	cache, _ := lru.New[string, []int](closureCacheSize)
	return &subsetBuilder{nfa: n, adj: buildAdjacency(n), cache: cache}
}

// canonicalKey produces the sorted, comma-joined string identity of a
// state set, per SPEC_FULL.md §4.4's determinism note: DFA subset
// identity must be by set content, not construction path.
func canonicalKey(states []int) string {
	sorted := append([]int(nil), states...)
	sort.Ints(sorted)
	var sb strings.Builder
	for i, s := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(s))
	}
	return sb.String()
}

// epsilonClosure returns the sorted, deduplicated epsilon-closure of
// states, worklist-based per SPEC_FULL.md §4.4. Cache hits skip the
// worklist walk entirely; the result invariant (closure saturation) does
// not depend on the cache, only its cost does.
func (b *subsetBuilder) epsilonClosure(states []int) []int {
	key := canonicalKey(states)
	if v, ok := b.cache.Get(key); ok {
		return v
	}

	seen := make(map[int]bool, len(states))
	worklist := make([]int, 0, len(states))
	for _, s := range states {
		if !seen[s] {
			seen[s] = true
			worklist = append(worklist, s)
		}
	}
	for i := 0; i < len(worklist); i++ {
		for _, next := range b.adj.epsilon[worklist[i]] {
			if !seen[next] {
				seen[next] = true
				worklist = append(worklist, next)
			}
		}
	}

	result := make([]int, 0, len(seen))
	for s := range seen {
		result = append(result, s)
	}
	sort.Ints(result)

	b.cache.Add(key, result)
	return result
}

// move returns the set of states reachable from states via a single
// non-epsilon transition on sym.
func (b *subsetBuilder) move(states []int, sym Symbol) []int {
	seen := make(map[int]bool)
	var result []int
	for _, s := range states {
		for _, next := range b.adj.symbol[s][sym] {
			if !seen[next] {
				seen[next] = true
				result = append(result, next)
			}
		}
	}
	return result
}

// BuildDFA determinizes a combined NFA via subset construction
// (SPEC_FULL.md §4.4): epsilon-closure of the start state seeds DFA
// state 0, then a worklist explores every (subset, symbol) pair over the
// NFA's alphabet, canonicalizing subsets so that two construction paths
// reaching the same NFA-state set collapse onto the same DFA state.
func BuildDFA(n *NFA) *DFA {
	b := newSubsetBuilder(n)
	dfa := newDFA()

	alphabet := n.Alphabet()
	dfa.alphabet = alphabet

	idOf := make(map[string]int)
	subsets := make(map[int][]int)

	startSet := b.epsilonClosure([]int{n.start})
	startID := dfa.addState()
	idOf[canonicalKey(startSet)] = startID
	subsets[startID] = startSet
	dfa.labelIfAccepting(startID, startSet, n)
	dfa.start = startID

	worklist := []int{startID}
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		curSet := subsets[cur]

		for _, sym := range alphabet {
			moved := b.move(curSet, sym)
			if len(moved) == 0 {
				continue
			}
			target := b.epsilonClosure(moved)
			key := canonicalKey(target)

			id, exists := idOf[key]
			if !exists {
				id = dfa.addState()
				idOf[key] = id
				subsets[id] = target
				dfa.labelIfAccepting(id, target, n)
				worklist = append(worklist, id)
			}
			dfa.setTransition(cur, sym, id)
		}
	}

	return dfa
}
