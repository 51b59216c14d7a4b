package combinator

// Thunk is a shared, mutable, single-slot memo cell holding an
// Expression. Thaw reduces the held expression to weak-head-normal
// form and stores the result back into the cell, so later calls are
// O(1). Multiple graph positions may hold the same Thunk; reducing one
// updates all of them. Thunks are never shared across goroutines.
type Thunk struct {
	cell Expression
}

// Freeze promotes an Expression into a fresh Thunk.
func Freeze(e Expression) *Thunk {
	return &Thunk{cell: e}
}

// Thaw returns the weak-head-normal form of t, memoizing it in place.
func (t *Thunk) Thaw() (Expression, error) {
	e, err := reduce(t.cell)
	if err != nil {
		return Expression{}, err
	}
	t.cell = e
	return e, nil
}

func (t *Thunk) String() string {
	return t.cell.String()
}
