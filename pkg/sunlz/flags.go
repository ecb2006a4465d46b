package sunlz

// flagGroup is one control byte on the decode side.
type flagGroup byte

// literal reports whether decision i (0 = least significant bit) is a literal.
func (g flagGroup) literal(i int) bool {
	return g>>i&1 == 1
}

// flagWriter groups encoder decisions eight at a time. Each group is written
// as its control byte followed by the payload bytes of its units.
type flagWriter struct {
	out     []byte
	control byte
	count   int
	payload []byte
}

func newFlagWriter(out []byte) *flagWriter {
	return &flagWriter{
		out:     out,
		payload: make([]byte, 0, flagBits*refSize),
	}
}

// literal records a literal decision carrying b.
func (w *flagWriter) literal(b byte) {
	w.control |= 1 << w.count
	w.payload = append(w.payload, b)
	w.next()
}

// reference records a back-reference decision carrying its descriptor.
func (w *flagWriter) reference(lo, hi byte) {
	w.payload = append(w.payload, lo, hi)
	w.next()
}

func (w *flagWriter) next() {
	w.count++
	if w.count == flagBits {
		w.flush()
	}
}

// flush emits a pending group. Unused high bits of a partial group stay 0.
func (w *flagWriter) flush() {
	if w.count == 0 {
		return
	}
	w.out = append(w.out, w.control)
	w.out = append(w.out, w.payload...)
	w.control = 0
	w.count = 0
	w.payload = w.payload[:0]
}

// bytes flushes any partial group and returns everything written.
func (w *flagWriter) bytes() []byte {
	w.flush()
	return w.out
}
