package sunlz

import (
	"encoding/binary"
	"fmt"
)

// CompressOptions configures compression.
type CompressOptions struct {
	// LegacyHeader writes the size header big-endian, as the original
	// Sunsoft tool did. Such streams do not decode unless the size is a
	// byte palindrome; use it only to reproduce that tool's output.
	LegacyHeader bool
}

// DefaultCompressOptions returns options producing a stream Decompress reads back.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// Compress encodes src into a size-prefixed stream. Options nil means DefaultCompressOptions().
func (c *Codec) Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	f := c.format
	window := f.newWindow()
	finder := NewMatchFinder(f, window)

	// header placeholder, patched once the payload size is known
	out := make([]byte, headerSize, headerSize+len(src)+len(src)/flagBits+1)
	w := newFlagWriter(out)

	pos := 0
	for pos < len(src) {
		m, ok := finder.Find(src[pos:])
		if ok && m.Length >= f.MinLength && m.Length <= len(src)-pos {
			w.reference(f.encodeRef(m.Index, m.Length))
			for _, b := range src[pos : pos+m.Length] {
				window.Append(b)
			}
			pos += m.Length
			continue
		}

		w.literal(src[pos])
		window.Append(src[pos])
		pos++
	}

	out = w.bytes()
	size := len(out) - headerSize
	if size > maxPayload {
		return nil, fmt.Errorf("%w: 0x%X bytes", ErrTooLarge, size)
	}

	order := f.HeaderOrder
	if opts.LegacyHeader {
		order = binary.BigEndian
	}
	order.PutUint16(out, uint16(size))

	return out, nil
}
