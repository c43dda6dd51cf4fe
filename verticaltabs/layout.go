package verticaltabs

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNegativeIndex  = errors.New("section index must not be negative")
	ErrNegativeHeight = errors.New("section height must not be negative")
)

// Direction is the direction of a user scroll relative to where the drag began.
type Direction int

const (
	None Direction = iota
	Down
	Up
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "none"
	}
}

// DirectionOf reports which way the content moved from one offset to another.
func DirectionOf(from, to int) Direction {
	switch {
	case to > from:
		return Down
	case to < from:
		return Up
	default:
		return None
	}
}

// Entry is one measured content section.
type Entry struct {
	Index        int
	Height       int
	Accumulation int // height of sections 0..Index inclusive
}

// Top is the offset at which the section starts.
func (e Entry) Top() int { return e.Accumulation - e.Height }

// Layout is the running-sum table of measured section heights.
// Sections that have not reported a height yet count as zero rows.
type Layout struct {
	heights []int
	acc     []int
}

// Record stores the measured height of section index, replacing any earlier
// measurement of the same section.
func (l *Layout) Record(index, height int) error {
	if index < 0 {
		return fmt.Errorf("record section %d: %w", index, ErrNegativeIndex)
	}
	if height < 0 {
		return fmt.Errorf("record section %d height %d: %w", index, height, ErrNegativeHeight)
	}
	for len(l.heights) <= index {
		l.heights = append(l.heights, 0)
	}
	l.heights[index] = height
	l.rebuild(index)
	return nil
}

// rebuild recomputes prefix sums from index onwards.
func (l *Layout) rebuild(from int) {
	if len(l.acc) < len(l.heights) {
		l.acc = append(l.acc, make([]int, len(l.heights)-len(l.acc))...)
	}
	sum := 0
	if from > 0 {
		sum = l.acc[from-1]
	}
	for i := from; i < len(l.heights); i++ {
		sum += l.heights[i]
		l.acc[i] = sum
	}
}

// Reset drops every measurement; call it whenever the content list changes.
func (l *Layout) Reset() {
	l.heights = l.heights[:0]
	l.acc = l.acc[:0]
}

func (l *Layout) Len() int { return len(l.heights) }

// Total is the height of all sections together.
func (l *Layout) Total() int {
	if len(l.acc) == 0 {
		return 0
	}
	return l.acc[len(l.acc)-1]
}

// Entries returns a copy of the table in index order.
func (l *Layout) Entries() []Entry {
	out := make([]Entry, len(l.heights))
	for i, h := range l.heights {
		out[i] = Entry{Index: i, Height: h, Accumulation: l.acc[i]}
	}
	return out
}

// Offset is the prefix sum of heights 0..index-1: the scroll offset that
// brings section index to the top of the pane.
func (l *Layout) Offset(index int) int {
	if index <= 0 || len(l.acc) == 0 {
		return 0
	}
	if index >= len(l.acc) {
		return l.Total()
	}
	return l.acc[index-1]
}

// IndexAt maps a scroll offset to the section in view. Scrolling down, a
// section owns [top, bottom); scrolling up it owns (top, bottom], so an
// exact boundary keeps the upper section active until its top is reached.
// Offsets past the end resolve to the last section. ok is false only when
// nothing has been measured.
func (l *Layout) IndexAt(offset int, dir Direction) (int, bool) {
	n := len(l.acc)
	if n == 0 {
		return 0, false
	}
	if offset <= 0 {
		return 0, true
	}
	if offset >= l.Total() {
		if dir == Up && offset == l.Total() {
			return l.lastNonEmpty(), true
		}
		return n - 1, true
	}
	var i int
	if dir == Up {
		i = sort.Search(n, func(i int) bool { return l.acc[i] >= offset })
	} else {
		i = sort.Search(n, func(i int) bool { return l.acc[i] > offset })
	}
	return i, true
}

func (l *Layout) lastNonEmpty() int {
	for i := len(l.heights) - 1; i >= 0; i-- {
		if l.heights[i] > 0 {
			return i
		}
	}
	return len(l.heights) - 1
}
