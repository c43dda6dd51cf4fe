package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w, h := m.bodySize()
		cmd := m.updatePage(BodySizeMsg{Width: w, Height: h})
		return m, cmd
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.screens.Pop()
				return m, cmd
			}
			m.screens.ReplaceTop(next)
			return m, cmd
		}

		action, ok := m.keys.ActionFor(msg, m.ActiveScope())
		if !ok {
			cmd := m.updatePage(msg)
			return m, cmd
		}
		switch action {
		case "quit":
			m.quitting = true
			return m, tea.Quit
		case "jump":
			provider, ok := m.page.(JumpTargetProvider)
			if !ok {
				return m, nil
			}
			m.screens.Push(newJumpPickerScreen(provider.JumpTargets(), m.keys))
			return m, nil
		default:
			cmd := m.updatePage(ActionMsg{Action: action})
			return m, cmd
		}
	case tea.MouseMsg:
		if m.screens.Top() != nil {
			return m, nil
		}
	}
	cmd := m.updatePage(msg)
	return m, cmd
}

func (m *Model) updatePage(msg tea.Msg) tea.Cmd {
	if m.page == nil {
		return nil
	}
	return m.page.Update(m, msg)
}
