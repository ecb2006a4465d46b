package sunlz

import "fmt"

// Window is the circular history buffer back-references copy from.
// All positions are reduced modulo its size, so negative offsets address
// bytes behind the start of the buffer.
type Window struct {
	buf    []byte
	mask   int
	cursor int
}

// NewWindow returns a window of size bytes filled with seed and its cursor
// at start. size must be a power of two.
func NewWindow(size int, seed byte, start int) (*Window, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: window size %d is not a power of two", ErrInvalidFormat, size)
	}

	buf := make([]byte, size)
	if seed != 0 {
		for i := range buf {
			buf[i] = seed
		}
	}

	return &Window{
		buf:    buf,
		mask:   size - 1,
		cursor: start & (size - 1),
	}, nil
}

// Size returns the window capacity.
func (w *Window) Size() int { return len(w.buf) }

// Cursor returns the position the next Append writes to.
func (w *Window) Cursor() int { return w.cursor }

// Append writes b at the cursor and advances it.
func (w *Window) Append(b byte) {
	w.buf[w.cursor] = b
	w.cursor = (w.cursor + 1) & w.mask
}

// Get returns the byte at offset. With a power-of-two size the mask is a
// true modulo, including for negative offsets.
func (w *Window) Get(offset int) byte {
	return w.buf[offset&w.mask]
}

// Set overwrites the byte at offset without moving the cursor.
func (w *Window) Set(offset int, b byte) {
	w.buf[offset&w.mask] = b
}

// CopyTo copies the window contents into dst, which must be at least Size bytes.
func (w *Window) CopyTo(dst []byte) {
	copy(dst, w.buf)
}
