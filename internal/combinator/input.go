package combinator

import "fmt"

// inputMemo is the shared box backing Input's per-index memo, analogous
// to the Rc<Cell<Option<InputItem>>> of the reference implementation:
// copying an Input value by assignment copies the pointer, so every
// copy of "the same" Input still observes a single read.
type inputMemo struct {
	item *inputItem
}

// Input is the lazy Scott-list view of the remaining bytes from index
// onward. All Input nodes derived from the same source share a single
// Reader; each Input's own item memo ensures the byte at its index is
// read from that Reader at most once even if the same Input value is
// referenced from many positions in the graph.
type Input struct {
	reader *Reader
	index  int
	memo   *inputMemo
}

// NewInput returns the Input node at position 0 of r.
func NewInput(r *Reader) Input {
	return Input{reader: r, memo: &inputMemo{}}
}

func (in Input) String() string {
	return fmt.Sprintf("Input(%d)", in.index)
}

func (in Input) fetch() (inputItem, error) {
	if in.memo.item != nil {
		return *in.memo.item, nil
	}
	item, err := in.reader.get(in.index)
	if err != nil {
		return inputItem{}, err
	}
	in.memo.item = &item
	return item, nil
}

// evaluate reads the item at in.index (cached after the first read) and
// builds the Scott-list cons cell for it: a Church numeral of the byte
// value (or 256 at eof) consed onto the Input at index+1.
func (in Input) evaluate() (Expression, error) {
	item, err := in.fetch()
	if err != nil {
		return Expression{}, err
	}

	n := int(item.byteVal)
	if item.isEOF {
		n = 256
	}

	next := Input{reader: in.reader, index: in.index + 1, memo: &inputMemo{}}
	return Cons(ChurchNat(n), WrapMagic(next)), nil
}

// Reduce forces the input at its index and yields the list cons cell.
func (in Input) Reduce() (Expression, error) {
	e, err := in.evaluate()
	if err != nil {
		return Expression{}, err
	}
	return reduce(e)
}

// Apply reduces the list node first, preserving the identity "an Input
// node is a list," then re-applies it to x.
func (in Input) Apply(x *Thunk) (Expression, error) {
	e, err := in.evaluate()
	if err != nil {
		return Expression{}, err
	}
	return reduce(ApplyExpr(Freeze(e), x))
}
