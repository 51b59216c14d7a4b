package combinator

import (
	"bufio"
	"io"
)

// inputItem is a single demanded position in the byte stream: either a
// concrete byte, or eof once the source is exhausted.
type inputItem struct {
	byteVal byte
	isEOF   bool
}

// Reader is the process-scoped state backing every Input node derived
// from the same source. Invariant: indices below nextIndex are either
// in cache or have already been consumed by an evaluate call; indices
// at or above nextIndex have not touched the source.
//
// Reader is not safe for concurrent use; the reducer is single-threaded
// per §5.
type Reader struct {
	src        io.Reader
	cache      map[int]byte
	reachedEOF bool
	nextIndex  int
}

// NewReader wraps src for use by Input nodes. src is put behind a
// bufio.Reader, so the byte-at-a-time reads of get do not each reach an
// unbuffered source (a raw os.File) directly.
func NewReader(src io.Reader) *Reader {
	return &Reader{
		src:   bufio.NewReader(src),
		cache: make(map[int]byte),
	}
}

// get implements the Reader protocol of §4.3: indices below nextIndex
// were buffered while fetching a later position and are consumed
// exactly once; indices at or beyond it are read from the source in
// strictly ascending order, with every position strictly before the
// demanded one cached for later out-of-order demand.
func (r *Reader) get(index int) (inputItem, error) {
	if index < r.nextIndex {
		b, ok := r.cache[index]
		if !ok {
			// Only reachable if the same index is demanded twice,
			// which Input's per-index memo prevents.
			return inputItem{}, errDoubleRead(index)
		}
		delete(r.cache, index)
		return inputItem{byteVal: b}, nil
	}

	if r.reachedEOF {
		return inputItem{isEOF: true}, nil
	}

	var buf [1]byte
	for i := r.nextIndex; i <= index; i++ {
		r.nextIndex++
		n, err := io.ReadFull(r.src, buf[:])
		if n == 0 {
			if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
				return inputItem{}, err
			}
			r.reachedEOF = true
			return inputItem{isEOF: true}, nil
		}
		if i == index {
			return inputItem{byteVal: buf[0]}, nil
		}
		r.cache[i] = buf[0]
	}
	panic("unreachable")
}
