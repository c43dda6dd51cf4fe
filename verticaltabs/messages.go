package verticaltabs

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Source says what moved the active index.
type Source int

const (
	// SourceScroll is a user scroll of the content pane.
	SourceScroll Source = iota
	// SourcePress is a tab bar press (key, click, or PressTab).
	SourcePress
)

func (s Source) String() string {
	if s == SourcePress {
		return "press"
	}
	return "scroll"
}

// IndexChangeMsg reports a change of the active index made by the widget
// itself. Indexes set through SetIndex are never echoed back.
type IndexChangeMsg struct {
	ID       string
	Index    int
	Previous int
	Source   Source
}

// frameMsg advances an animated programmatic scroll.
type frameMsg struct {
	id  string
	seq int
}

func frameCmd(id string, seq, fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return frameMsg{id: id, seq: seq}
	})
}

func indexChangeCmd(msg IndexChangeMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// DefaultKey keys an item by its position.
func DefaultKey[T any](_ T, index int) string {
	return strconv.Itoa(index)
}
