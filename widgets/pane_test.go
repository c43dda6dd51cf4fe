package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPaneRendersTitleAndHeight(t *testing.T) {
	out := Pane{Title: "Books", Height: 6, Content: "line one\nline two"}.Render(24, 0)
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("line count = %d, want 6", len(lines))
	}
	if !strings.Contains(ansi.Strip(lines[0]), "Books") {
		t.Fatalf("expected title in top border, got %q", ansi.Strip(lines[0]))
	}
	if !strings.Contains(ansi.Strip(lines[1]), "line one") {
		t.Fatalf("expected content on first inner row")
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 24 {
			t.Fatalf("row %d width = %d, want 24", i, w)
		}
	}
}

func TestPaneClampsToAvailableHeight(t *testing.T) {
	out := Pane{Title: "Tall", Height: 20}.Render(10, 5)
	if got := len(strings.Split(out, "\n")); got != 5 {
		t.Fatalf("line count = %d, want 5", got)
	}
}

func TestPaneTruncatesLongTitle(t *testing.T) {
	out := Pane{Title: "A very long section title", Height: 3}.Render(12, 0)
	top := strings.Split(out, "\n")[0]
	if w := ansi.StringWidth(top); w != 12 {
		t.Fatalf("top border width = %d, want 12", w)
	}
	if !strings.HasPrefix(ansi.Strip(top), "╭ A very l ╮") {
		t.Fatalf("unexpected top border %q", ansi.Strip(top))
	}
}
