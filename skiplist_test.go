package prosegeek

import (
	"testing"
)

// ═══════════════════════════════════════════════════════════════════════════════
// POSITION TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestPosition_Sentinels(t *testing.T) {
	tests := []struct {
		name      string
		pos       Position
		beginning bool
		end       bool
	}{
		{"BOF position", BOFPosition, true, false},
		{"EOF position", EOFPosition, false, true},
		{"Regular position", Position{Sentence: 0, Offset: 0}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsBeginning(); got != tt.beginning {
				t.Errorf("IsBeginning() = %v, want %v", got, tt.beginning)
			}
			if got := tt.pos.IsEnd(); got != tt.end {
				t.Errorf("IsEnd() = %v, want %v", got, tt.end)
			}
		})
	}
}

func TestPosition_Ordering(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		other  Position
		before bool
		after  bool
		equals bool
	}{
		{"Earlier offset", Position{0, 1}, Position{0, 2}, true, false, false},
		{"Later offset", Position{1, 5}, Position{0, 2}, false, true, false},
		{"Same offset", Position{1, 4}, Position{1, 4}, false, false, true},
		{"BOF before everything", BOFPosition, Position{0, 0}, true, false, false},
		{"EOF after everything", EOFPosition, Position{9, 999}, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsBefore(tt.other); got != tt.before {
				t.Errorf("IsBefore() = %v, want %v", got, tt.before)
			}
			if got := tt.pos.IsAfter(tt.other); got != tt.after {
				t.Errorf("IsAfter() = %v, want %v", got, tt.after)
			}
			if got := tt.pos.Equals(tt.other); got != tt.equals {
				t.Errorf("Equals() = %v, want %v", got, tt.equals)
			}
		})
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// SKIP LIST TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func buildSkipList(offsets ...int) *SkipList {
	sl := NewSkipList()
	for _, o := range offsets {
		sl.Insert(Position{Sentence: o / 10, Offset: o})
	}
	return sl
}

func TestNewSkipList(t *testing.T) {
	sl := NewSkipList()
	if sl.Head == nil {
		t.Fatal("Head should not be nil")
	}
	if sl.Height != 1 {
		t.Errorf("Height = %d, want 1", sl.Height)
	}
	if sl.Len != 0 {
		t.Errorf("Len = %d, want 0", sl.Len)
	}
}

func TestSkipList_Insert_Multiple(t *testing.T) {
	sl := buildSkipList(1, 3, 7, 9, 12)

	if sl.Len != 5 {
		t.Errorf("Len = %d, want 5", sl.Len)
	}
	for _, o := range []int{1, 3, 7, 9, 12} {
		got, err := sl.Find(Position{Offset: o})
		if err != nil {
			t.Errorf("Find(%d) error: %v", o, err)
			continue
		}
		if got.Offset != o || got.Sentence != o/10 {
			t.Errorf("Find(%d) = %+v", o, got)
		}
	}
}

func TestSkipList_Insert_Duplicate(t *testing.T) {
	sl := NewSkipList()
	sl.Insert(Position{Sentence: 0, Offset: 4})
	sl.Insert(Position{Sentence: 2, Offset: 4})

	if sl.Len != 1 {
		t.Errorf("Len = %d, want 1 after duplicate insert", sl.Len)
	}
	got, _ := sl.Find(Position{Offset: 4})
	if got.Sentence != 2 {
		t.Errorf("duplicate insert should replace the entry, got sentence %d", got.Sentence)
	}
}

func TestSkipList_Insert_OutOfOrder(t *testing.T) {
	sl := buildSkipList(9, 1, 12, 3, 7)

	var got []int
	it := sl.Iterator()
	for it.HasNext() {
		got = append(got, it.Next().Offset)
	}
	want := []int{1, 3, 7, 9, 12}
	if len(got) != len(want) {
		t.Fatalf("iterated %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("iterated %v, want %v", got, want)
		}
	}
}

func TestSkipList_Find_NotFound(t *testing.T) {
	sl := buildSkipList(1, 3)

	got, err := sl.Find(Position{Offset: 2})
	if err != ErrKeyNotFound {
		t.Errorf("err = %v, want ErrKeyNotFound", err)
	}
	if !got.IsEnd() {
		t.Errorf("Find of a missing key = %+v, want EOF", got)
	}

	if _, err := NewSkipList().Find(Position{Offset: 0}); err != ErrKeyNotFound {
		t.Errorf("empty list err = %v, want ErrKeyNotFound", err)
	}
}

func TestSkipList_Contains(t *testing.T) {
	sl := buildSkipList(0, 4, 8)

	for _, o := range []int{0, 4, 8} {
		if !sl.Contains(o) {
			t.Errorf("Contains(%d) = false, want true", o)
		}
	}
	for _, o := range []int{-1, 1, 5, 9} {
		if sl.Contains(o) {
			t.Errorf("Contains(%d) = true, want false", o)
		}
	}
}

func TestSkipList_FindLessThan(t *testing.T) {
	sl := buildSkipList(1, 3, 7)

	tests := []struct {
		name    string
		key     int
		want    int
		wantBOF bool
	}{
		{"Existing key", 7, 3, false},
		{"Between keys", 5, 3, false},
		{"Past the end", 100, 7, false},
		{"First key", 1, 0, true},
		{"Before the first key", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sl.FindLessThan(Position{Offset: tt.key})
			if tt.wantBOF {
				if !got.IsBeginning() || err != ErrNoElementFound {
					t.Errorf("FindLessThan(%d) = %+v, %v; want BOF", tt.key, got, err)
				}
				return
			}
			if err != nil || got.Offset != tt.want {
				t.Errorf("FindLessThan(%d) = %+v, %v; want %d", tt.key, got, err, tt.want)
			}
		})
	}
}

func TestSkipList_FindGreaterThan(t *testing.T) {
	sl := buildSkipList(1, 3, 7)

	tests := []struct {
		name    string
		key     int
		want    int
		wantEOF bool
	}{
		{"Existing key", 3, 7, false},
		{"Between keys", 4, 7, false},
		{"Before the first key", -5, 1, false},
		{"Last key", 7, 0, true},
		{"Past the end", 100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sl.FindGreaterThan(Position{Offset: tt.key})
			if tt.wantEOF {
				if !got.IsEnd() || err != ErrNoElementFound {
					t.Errorf("FindGreaterThan(%d) = %+v, %v; want EOF", tt.key, got, err)
				}
				return
			}
			if err != nil || got.Offset != tt.want {
				t.Errorf("FindGreaterThan(%d) = %+v, %v; want %d", tt.key, got, err, tt.want)
			}
		})
	}
}

func TestSkipList_FirstLast(t *testing.T) {
	empty := NewSkipList()
	if !empty.First().IsEnd() {
		t.Errorf("First() of empty list = %+v, want EOF", empty.First())
	}
	if !empty.Last().IsBeginning() {
		t.Errorf("Last() of empty list = %+v, want BOF", empty.Last())
	}

	sl := buildSkipList(12, 3, 40)
	if got := sl.First().Offset; got != 3 {
		t.Errorf("First() = %d, want 3", got)
	}
	if got := sl.Last().Offset; got != 40 {
		t.Errorf("Last() = %d, want 40", got)
	}
}

func TestSkipList_Iterator_Empty(t *testing.T) {
	it := NewSkipList().Iterator()
	if it.HasNext() {
		t.Error("HasNext() on empty list should be false")
	}
	if !it.Next().IsEnd() {
		t.Error("Next() on empty list should return EOF")
	}
}

func TestSkipList_Deterministic(t *testing.T) {
	a := buildSkipList(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	b := buildSkipList(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	if a.Height != b.Height {
		t.Errorf("heights differ: %d vs %d", a.Height, b.Height)
	}
}

func TestSkipList_LargeDataset(t *testing.T) {
	sl := NewSkipList()
	const n = 5000
	for i := n - 1; i >= 0; i-- {
		sl.Insert(Position{Sentence: i / 20, Offset: i * 2})
	}

	if sl.Len != n {
		t.Fatalf("Len = %d, want %d", sl.Len, n)
	}
	if sl.Height > MaxHeight {
		t.Fatalf("Height = %d exceeds MaxHeight", sl.Height)
	}
	for i := 0; i < n; i += 97 {
		if !sl.Contains(i * 2) {
			t.Errorf("Contains(%d) = false", i*2)
		}
		if sl.Contains(i*2 + 1) {
			t.Errorf("Contains(%d) = true", i*2+1)
		}
	}
	next, err := sl.FindGreaterThan(Position{Offset: 101})
	if err != nil || next.Offset != 102 {
		t.Errorf("FindGreaterThan(101) = %+v, %v; want 102", next, err)
	}
}
