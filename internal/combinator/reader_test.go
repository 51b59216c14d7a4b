package combinator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// orderTrackingReader records the sequence of bytes actually pulled
// from the underlying source, so tests can assert the Reader protocol
// reads in strictly ascending order with no repeats.
type orderTrackingReader struct {
	data  []byte
	pos   int
	order []int
}

func (r *orderTrackingReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, nil
	}
	r.order = append(r.order, r.pos)
	p[0] = r.data[r.pos]
	r.pos++
	return 1, nil
}

func TestReaderOutOfOrderDemandStillReadsInOrder(t *testing.T) {
	src := &orderTrackingReader{data: []byte("hello")}
	r := NewReader(src)

	// Demand index 3 before 0 and 1; the Reader must still have pulled
	// 0..3 from the source in order, buffering 0..2.
	item3, err := r.get(3)
	require.NoError(t, err)
	require.Equal(t, byte('l'), item3.byteVal)
	require.Equal(t, []int{0, 1, 2, 3}, src.order)

	item0, err := r.get(0)
	require.NoError(t, err)
	require.Equal(t, byte('h'), item0.byteVal)

	item1, err := r.get(1)
	require.NoError(t, err)
	require.Equal(t, byte('e'), item1.byteVal)

	item2, err := r.get(2)
	require.NoError(t, err)
	require.Equal(t, byte('l'), item2.byteVal)

	// Still strictly ascending, no repeats: no further source reads
	// happened to answer the already-buffered positions.
	require.Equal(t, []int{0, 1, 2, 3}, src.order)
}

func TestReaderEOFLatches(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))

	item, err := r.get(0)
	require.NoError(t, err)
	require.True(t, item.isEOF)

	item, err = r.get(5)
	require.NoError(t, err)
	require.True(t, item.isEOF)
}

func TestInputEvaluateEmitsEOFSentinel(t *testing.T) {
	reader := NewReader(bytes.NewReader(nil))
	in := NewInput(reader)

	cons, err := in.evaluate()
	require.NoError(t, err)

	head, _ := Uncons(cons)
	n, ok, err := DecodeChurchNat(head)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 256, n)
}

func TestInputEvaluateIsMemoizedPerIndex(t *testing.T) {
	src := &orderTrackingReader{data: []byte("x")}
	reader := NewReader(src)
	in := NewInput(reader)

	_, err := in.evaluate()
	require.NoError(t, err)
	_, err = in.evaluate()
	require.NoError(t, err)

	require.Len(t, src.order, 1, "evaluating the same Input index twice must read the source once")
}
