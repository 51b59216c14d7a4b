package combinator

import "fmt"

// errUnreachableHead reports a Kind that thaw can never produce as a
// function-position weak-head-normal form (K1/S1/S2/Apply/Magic and the
// four leaves are exhaustive). Seeing it means a bug in this package,
// not a malformed program.
func errUnreachableHead(k Kind) error {
	return fmt.Errorf("combinator: unreachable weak-head form %s in function position", k)
}

// errDoubleRead guards the Reader protocol's invariant that a buffered
// position is consumed exactly once; Input's per-index memo is the
// only caller and it never demands the same index twice.
func errDoubleRead(index int) error {
	return fmt.Errorf("combinator: index %d read twice from input buffer", index)
}
