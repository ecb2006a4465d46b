package sunlz

import "testing"

func newSunsoftWindow(t *testing.T) *Window {
	t.Helper()
	w, err := NewWindow(Sunsoft.WindowSize, Sunsoft.SeedValue, Sunsoft.SeedOffset)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func place(w *Window, at int, data string) {
	for i := 0; i < len(data); i++ {
		w.Set(at+i, data[i])
	}
}

func TestFindPrefersHigherIndexOnTie(t *testing.T) {
	w := newSunsoftWindow(t)
	place(w, 0x100, "ABC")
	place(w, 0x200, "ABC")

	m, ok := NewMatchFinder(Sunsoft, w).Find([]byte("ABCD"))
	if !ok {
		t.Fatal("expected a match")
	}
	if m != (Match{Index: 0x200, Length: 3}) {
		t.Fatalf("got %+v, want index 0x200 length 3", m)
	}
}

func TestFindPrefersLongest(t *testing.T) {
	w := newSunsoftWindow(t)
	place(w, 0x100, "ABCDE")
	place(w, 0x200, "ABC")

	m, ok := NewMatchFinder(Sunsoft, w).Find([]byte("ABCDEF"))
	if !ok || m != (Match{Index: 0x100, Length: 5}) {
		t.Fatalf("got %+v %v, want index 0x100 length 5", m, ok)
	}
}

func TestMatchBetter(t *testing.T) {
	cases := []struct {
		m, cur Match
		want   bool
	}{
		{Match{1, 4}, Match{9, 3}, true},
		{Match{9, 3}, Match{1, 4}, false},
		{Match{9, 3}, Match{1, 3}, true},
		{Match{1, 3}, Match{9, 3}, false},
	}
	for _, c := range cases {
		if got := c.m.better(c.cur); got != c.want {
			t.Fatalf("%+v.better(%+v) = %v, want %v", c.m, c.cur, got, c.want)
		}
	}
}

func TestFindSkipsIndexZero(t *testing.T) {
	w := newSunsoftWindow(t)
	place(w, 0, "XYZ")

	if m, ok := NewMatchFinder(Sunsoft, w).Find([]byte("XYZ!")); ok {
		t.Fatalf("index 0 reported: %+v", m)
	}
}

func TestFindSkipsPostTrialIndex(t *testing.T) {
	w := newSunsoftWindow(t)
	// probing 3 bytes at cursor 0xFEE invalidates 0xFEE+3+1
	place(w, 0xFF2, "XYZ")

	f := NewMatchFinder(Sunsoft, w)
	if m, ok := f.Find([]byte("XYZ!")); ok {
		t.Fatalf("post-trial index reported: %+v", m)
	}

	place(w, 0x300, "XYZ")
	m, ok := f.Find([]byte("XYZ!"))
	if !ok || m != (Match{Index: 0x300, Length: 3}) {
		t.Fatalf("got %+v %v, want index 0x300 length 3", m, ok)
	}
}

func TestFindOverlapsTrialCopy(t *testing.T) {
	w := newSunsoftWindow(t)
	w.Append('A')

	m, ok := NewMatchFinder(Sunsoft, w).Find([]byte("AAAAAAAAAA"))
	if !ok || m != (Match{Index: 0xFEE, Length: 10}) {
		t.Fatalf("got %+v %v, want index 0xFEE length 10", m, ok)
	}
}

func TestFindCapsAtMaxLength(t *testing.T) {
	w := newSunsoftWindow(t)
	ahead := make([]byte, 40)

	m, ok := NewMatchFinder(Sunsoft, w).Find(ahead)
	if !ok {
		t.Fatal("expected a match into the zero seed")
	}
	if m.Length != Sunsoft.MaxLength() {
		t.Fatalf("length = %d, want %d", m.Length, Sunsoft.MaxLength())
	}
	// 0xFFF reads on into the zero trial bytes
	if m.Index != 0xFFF {
		t.Fatalf("index = 0x%X, want 0xFFF", m.Index)
	}
}

func TestFindShortInput(t *testing.T) {
	w := newSunsoftWindow(t)
	if _, ok := NewMatchFinder(Sunsoft, w).Find([]byte{0, 0}); ok {
		t.Fatal("match reported for input shorter than the minimum length")
	}
}

func TestFindLeavesWindowUntouched(t *testing.T) {
	w := newSunsoftWindow(t)
	place(w, 0x40, "hello")
	before := make([]byte, w.Size())
	w.CopyTo(before)
	cursor := w.Cursor()

	NewMatchFinder(Sunsoft, w).Find([]byte("hello world"))

	after := make([]byte, w.Size())
	w.CopyTo(after)
	if string(before) != string(after) || w.Cursor() != cursor {
		t.Fatal("Find modified the window")
	}
}
