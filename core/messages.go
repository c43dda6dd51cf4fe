package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

// BodySizeMsg tells the page how much room it has after chrome.
type BodySizeMsg struct {
	Width  int
	Height int
}

// ActionMsg is sent to the page for registry actions the shell does not
// handle itself.
type ActionMsg struct {
	Action string
}

type JumpTargetSelectedMsg struct {
	Key string
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
