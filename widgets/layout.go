package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// HStack lays widgets out in columns. Widths pins a column to an exact
// width; zero entries share what is left evenly.
type HStack struct {
	Widgets []Widget
	Widths  []int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	widths := h.columnWidths(width)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		if widths[i] <= 0 {
			continue
		}
		part := strings.Split(w.Render(widths[i], height), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	maxLines = min(maxLines, height)
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		var row strings.Builder
		for i := range rendered {
			if widths[i] <= 0 {
				continue
			}
			if line < len(rendered[i]) {
				row.WriteString(PadRight(rendered[i][line], widths[i]))
			} else {
				row.WriteString(strings.Repeat(" ", widths[i]))
			}
		}
		out = append(out, row.String())
	}
	return strings.Join(out, "\n")
}

func (h HStack) columnWidths(total int) []int {
	n := len(h.Widgets)
	if len(h.Widths) != n {
		return splitWidths(total, n)
	}
	out := make([]int, n)
	fixed := 0
	flex := 0
	for i, w := range h.Widths {
		if w > 0 {
			out[i] = min(w, max(0, total-fixed))
			fixed += out[i]
		} else {
			flex++
		}
	}
	if flex == 0 {
		return out
	}
	shared := splitWidths(max(0, total-fixed), flex)
	j := 0
	for i, w := range h.Widths {
		if w <= 0 {
			out[i] = shared[j]
			j++
		}
	}
	return out
}

// splitWidths divides total into n columns, giving the remainder to the
// leftmost ones.
func splitWidths(total, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = total / n
	}
	for i := 0; i < total%n; i++ {
		out[i]++
	}
	return out
}

// PadRight truncates or pads s to exactly width cells, ANSI aware.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
