package sunlz

import "fmt"

// unit is one decoded control decision.
type unit struct {
	literal  bool
	value    byte
	distance int
	length   int
}

// Decompress decodes the stream whose size header sits at offset in src.
func (c *Codec) Decompress(src []byte, offset int) ([]byte, error) {
	out, _, err := c.DecompressStream(src, offset)
	return out, err
}

// DecompressStream decodes the stream at offset and also returns how many
// bytes of src it occupies, header included.
func (c *Codec) DecompressStream(src []byte, offset int) ([]byte, int, error) {
	body, err := c.body(src, offset)
	if err != nil {
		return nil, 0, err
	}

	window := c.format.newWindow()
	out := make([]byte, 0, 2*len(body))
	err = c.walk(body, func(u unit) {
		if u.literal {
			window.Append(u.value)
			out = append(out, u.value)
			return
		}
		// read before append so overlapping copies see fresh bytes
		for i := 0; i < u.length; i++ {
			b := window.Get(u.distance + i)
			window.Append(b)
			out = append(out, b)
		}
	})
	if err != nil {
		return nil, 0, err
	}

	return out, headerSize + len(body), nil
}

// body validates the header at offset and returns the bytes it declares.
func (c *Codec) body(src []byte, offset int) ([]byte, error) {
	if offset < 0 || offset >= len(src) {
		return nil, fmt.Errorf("%w: 0x%X, image is 0x%X bytes", ErrOffsetOutOfRange, offset, len(src))
	}
	if len(src)-offset < headerSize {
		return nil, fmt.Errorf("%w: size header at 0x%X", ErrTruncated, offset)
	}

	size := int(c.format.HeaderOrder.Uint16(src[offset:]))
	start := offset + headerSize
	if size > len(src)-start {
		return nil, fmt.Errorf("%w: header declares 0x%X bytes, 0x%X available", ErrTruncated, size, len(src)-start)
	}

	return src[start : start+size], nil
}

// walk runs the control-byte state machine over body, calling fn for every
// unit. The remaining byte count is the only stop condition: bits left in
// the last control byte after it reaches zero are ignored.
func (c *Codec) walk(body []byte, fn func(unit)) error {
	remaining := len(body)
	pos := 0

	for remaining > 0 {
		flags := flagGroup(body[pos])
		pos++
		remaining--

		for bit := 0; bit < flagBits && remaining > 0; bit++ {
			if flags.literal(bit) {
				fn(unit{literal: true, value: body[pos]})
				pos++
				remaining--
				continue
			}

			if remaining < refSize {
				return fmt.Errorf("%w: back-reference at stream byte 0x%X has %d of %d bytes", ErrTruncated, pos, remaining, refSize)
			}
			distance, length := c.format.decodeRef(body[pos], body[pos+1])
			fn(unit{distance: distance, length: length})
			pos += refSize
			remaining -= refSize
		}
	}

	return nil
}
