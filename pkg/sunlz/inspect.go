package sunlz

// Stats summarises the units of one compressed stream.
type Stats struct {
	StreamSize   int // bytes occupied in the image, header included
	DecodedSize  int
	ControlBytes int
	Literals     int
	References   int
	MinRefLength int
	MaxRefLength int
	MaxDistance  int
}

// Ratio returns compressed size over decoded size, or 0 for an empty stream.
func (s *Stats) Ratio() float64 {
	if s.DecodedSize == 0 {
		return 0
	}
	return float64(s.StreamSize) / float64(s.DecodedSize)
}

// Inspect walks the stream at offset without decoding it.
func (c *Codec) Inspect(src []byte, offset int) (*Stats, error) {
	body, err := c.body(src, offset)
	if err != nil {
		return nil, err
	}

	st := &Stats{StreamSize: headerSize + len(body)}
	err = c.walk(body, func(u unit) {
		if u.literal {
			st.Literals++
			st.DecodedSize++
			return
		}
		if st.References == 0 || u.length < st.MinRefLength {
			st.MinRefLength = u.length
		}
		st.MaxRefLength = max(st.MaxRefLength, u.length)
		st.MaxDistance = max(st.MaxDistance, u.distance)
		st.References++
		st.DecodedSize += u.length
	})
	if err != nil {
		return nil, err
	}

	// every group of up to eight units costs one control byte
	st.ControlBytes = len(body) - st.Literals - refSize*st.References
	return st, nil
}
