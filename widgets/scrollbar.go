package widgets

import "strings"

// Scrollbar is a one column track with a thumb sized to the visible
// fraction of the content.
type Scrollbar struct {
	Total   int
	Visible int
	Offset  int
}

const (
	scrollTrack = "│"
	scrollThumb = "┃"
)

func (s Scrollbar) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	top, size := s.Thumb(height)
	rows := make([]string, height)
	for i := range rows {
		cell := scrollTrack
		if i >= top && i < top+size {
			cell = scrollThumb
		}
		rows[i] = PadRight(cell, width)
	}
	return strings.Join(rows, "\n")
}

// Thumb returns the first row and the length of the thumb on a track of
// the given height. Size is zero when everything fits.
func (s Scrollbar) Thumb(height int) (top, size int) {
	visible := s.Visible
	if visible <= 0 {
		visible = height
	}
	if s.Total <= visible || height <= 0 {
		return 0, 0
	}
	size = max(1, height*visible/s.Total)
	maxOffset := s.Total - visible
	maxTop := height - size
	offset := min(max(0, s.Offset), maxOffset)
	top = offset * maxTop / maxOffset
	return top, size
}
