package verticaltabs

import (
	"errors"
	"testing"
)

func layoutOf(t *testing.T, heights ...int) *Layout {
	t.Helper()
	var l Layout
	for i, h := range heights {
		if err := l.Record(i, h); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	return &l
}

func TestLayoutAccumulatesPrefixSums(t *testing.T) {
	l := layoutOf(t, 5, 3, 0, 6, 4)
	want := []int{5, 8, 8, 14, 18}
	for i, e := range l.Entries() {
		if e.Index != i || e.Accumulation != want[i] {
			t.Fatalf("entry %d = %+v, want accumulation %d", i, e, want[i])
		}
	}
	if l.Total() != 18 {
		t.Fatalf("total = %d, want 18", l.Total())
	}
}

func TestLayoutOffsetIsPrefixSumOfPrecedingHeights(t *testing.T) {
	l := layoutOf(t, 5, 3, 0, 6, 4)
	tests := []struct {
		index int
		want  int
	}{
		{-1, 0}, {0, 0}, {1, 5}, {2, 8}, {3, 8}, {4, 14}, {5, 18}, {99, 18},
	}
	for _, tc := range tests {
		if got := l.Offset(tc.index); got != tc.want {
			t.Fatalf("Offset(%d) = %d, want %d", tc.index, got, tc.want)
		}
	}
}

func TestLayoutRecordOutOfOrderAndReplace(t *testing.T) {
	var l Layout
	for _, rec := range [][2]int{{2, 4}, {0, 1}, {1, 2}, {0, 3}} {
		if err := l.Record(rec[0], rec[1]); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if l.Len() != 3 {
		t.Fatalf("len = %d, want 3", l.Len())
	}
	if got := l.Offset(2); got != 5 {
		t.Fatalf("Offset(2) = %d, want 5", got)
	}
	if l.Total() != 9 {
		t.Fatalf("total = %d, want 9", l.Total())
	}
	prev := 0
	for _, e := range l.Entries() {
		if e.Accumulation < prev {
			t.Fatalf("accumulation decreased at %d", e.Index)
		}
		prev = e.Accumulation
	}
}

func TestLayoutRejectsNegativeInput(t *testing.T) {
	var l Layout
	if err := l.Record(0, -1); !errors.Is(err, ErrNegativeHeight) {
		t.Fatalf("expected ErrNegativeHeight, got %v", err)
	}
	if err := l.Record(-1, 1); !errors.Is(err, ErrNegativeIndex) {
		t.Fatalf("expected ErrNegativeIndex, got %v", err)
	}
	if l.Len() != 0 {
		t.Fatalf("rejected records must not grow the table")
	}
}

func TestLayoutReset(t *testing.T) {
	l := layoutOf(t, 2, 2)
	l.Reset()
	if l.Len() != 0 || l.Total() != 0 {
		t.Fatalf("expected empty table after reset")
	}
	if _, ok := l.IndexAt(3, Down); ok {
		t.Fatalf("empty table should not resolve an index")
	}
}

func TestLayoutIndexAt(t *testing.T) {
	l := layoutOf(t, 5, 3, 0, 6, 4)
	tests := []struct {
		name   string
		offset int
		dir    Direction
		want   int
	}{
		{"top", 0, Down, 0},
		{"above top", -4, Up, 0},
		{"inside first", 4, Down, 0},
		{"boundary down", 5, Down, 1},
		{"boundary up", 5, Up, 0},
		{"no direction", 5, None, 1},
		{"skips empty section down", 8, Down, 3},
		{"skips empty section up", 8, Up, 1},
		{"inside fourth", 10, Up, 3},
		{"last", 17, Down, 4},
		{"end down", 18, Down, 4},
		{"end up", 18, Up, 4},
		{"past end up", 40, Up, 4},
		{"past end down", 40, Down, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := l.IndexAt(tc.offset, tc.dir)
			if !ok || got != tc.want {
				t.Fatalf("IndexAt(%d, %s) = %d,%v want %d", tc.offset, tc.dir, got, ok, tc.want)
			}
		})
	}
}

func TestLayoutOffsetRoundTripsThroughIndexAt(t *testing.T) {
	l := layoutOf(t, 7, 1, 12, 3)
	for i := 0; i < l.Len(); i++ {
		got, _ := l.IndexAt(l.Offset(i), Down)
		if got != i {
			t.Fatalf("IndexAt(Offset(%d)) = %d", i, got)
		}
	}
}

func TestDirectionOf(t *testing.T) {
	if DirectionOf(3, 9) != Down || DirectionOf(9, 3) != Up || DirectionOf(4, 4) != None {
		t.Fatalf("unexpected directions")
	}
}
