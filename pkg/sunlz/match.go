package sunlz

import "sync"

// Match is a back-reference candidate: Length bytes starting at window
// position Index.
type Match struct {
	Index  int
	Length int
}

// better reports whether m should replace cur as the best match: longer
// wins, and among equal lengths the most recent (higher) index wins.
func (m Match) better(cur Match) bool {
	if m.Length != cur.Length {
		return m.Length > cur.Length
	}
	return m.Index > cur.Index
}

// MatchFinder searches a window for the best back-reference to the
// upcoming input.
type MatchFinder struct {
	format Format
	window *Window
}

// NewMatchFinder returns a finder searching w with the constants of f.
func NewMatchFinder(f Format, w *Window) *MatchFinder {
	return &MatchFinder{format: f, window: w}
}

// Find returns the best match for the start of ahead, or false when no
// candidate reaches the minimum length.
//
// Probe lengths run from 1 up to the lookahead cap. Each probe writes its
// bytes into a scratch copy of the window at the cursor, the way a decoder
// would see them while copying, so a reference may overlap the bytes it
// produces. A position stays a candidate only while every probed byte
// decodes to the input. Position 0 and the position one past the end of
// the trial copy are never reported.
func (m *MatchFinder) Find(ahead []byte) (Match, bool) {
	limit := min(m.format.probeLimit(), len(ahead))
	if limit < m.format.MinLength {
		return Match{}, false
	}

	size := m.window.Size()
	s := acquireScratch(size)
	defer releaseScratch(s)

	trial := s.window
	m.window.CopyTo(trial)
	mask := size - 1
	cursor := m.window.Cursor()

	alive := s.alive[:0]
	for p := 0; p < size; p++ {
		if trial[p] == ahead[0] {
			alive = append(alive, p)
		}
	}

	var best Match
	found := false
	for length := 1; length <= limit && len(alive) > 0; length++ {
		i := length - 1
		want := ahead[i]

		// trial holds probe bytes 0..i-1 at the cursor, the rest is history
		kept := alive[:0]
		for _, p := range alive {
			if trial[(p+i)&mask] == want {
				kept = append(kept, p)
			}
		}
		alive = kept
		trial[(cursor+i)&mask] = want

		invalid := (cursor + length + 1) & mask
		for _, p := range alive {
			if p == 0 || p == invalid {
				continue
			}
			c := Match{Index: p, Length: length}
			if !found || c.better(best) {
				best = c
				found = true
			}
		}
	}
	s.alive = alive

	if !found || best.Length < m.format.MinLength {
		return Match{}, false
	}
	return best, true
}

// scratch is the per-search arena: a trial copy of the window and the
// candidate list. It never outlives one Find call.
type scratch struct {
	window []byte
	alive  []int
}

var scratchPool = sync.Pool{
	New: func() any {
		return &scratch{}
	},
}

func acquireScratch(size int) *scratch {
	s := scratchPool.Get().(*scratch)
	if cap(s.window) < size {
		s.window = make([]byte, size)
		s.alive = make([]int, 0, size)
	}
	s.window = s.window[:size]
	return s
}

func releaseScratch(s *scratch) {
	scratchPool.Put(s)
}
