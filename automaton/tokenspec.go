package automaton

// TokenSpec is a named regex pattern supplied by a caller of the
// generator. Its priority is implicit: the position it occupies in the
// slice passed to Combine (lower index wins ties).
type TokenSpec struct {
	Name    string
	Pattern string
}
