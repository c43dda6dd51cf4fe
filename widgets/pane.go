package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	paneBorder   = lipgloss.Color("#6c7086")
	paneText     = lipgloss.Color("#cdd6f4")
	paneActive   = lipgloss.Color("#89b4fa")
	paneTitleFmt = lipgloss.NewStyle().Foreground(paneText).Bold(true)
)

// Pane draws a rounded box with the title set into the top border. Height is
// the preferred height; the pane never grows past the height it is given
// unless that is zero.
type Pane struct {
	Title   string
	Height  int
	Content string
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	h := max(3, p.Height)
	if height > 0 && h > height {
		h = max(3, height)
	}
	width = max(4, width)

	borderStyle := lipgloss.NewStyle().Foreground(paneBorder)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		paneTitleFmt.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	innerHeight := h - 2
	contentLines := splitLines(p.Content)
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+PadRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
