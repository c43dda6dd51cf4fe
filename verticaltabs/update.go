package verticaltabs

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model[C, T]) Update(msg tea.Msg) (Model[C, T], tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != m.id || msg.seq != m.seq || !m.animating {
			return m, nil
		}
		return m, m.step()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model[C, T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.KeyMap.ToggleFocus):
		if m.focus == FocusTabBar {
			m.focus = FocusContent
		} else {
			m.focus = FocusTabBar
		}
		return nil
	case key.Matches(msg, m.KeyMap.PrevTab):
		return m.PressTab(m.index - 1)
	case key.Matches(msg, m.KeyMap.NextTab):
		return m.PressTab(m.index + 1)
	}

	if m.focus == FocusTabBar {
		switch {
		case key.Matches(msg, m.KeyMap.Up):
			return m.PressTab(m.index - 1)
		case key.Matches(msg, m.KeyMap.Down):
			return m.PressTab(m.index + 1)
		case key.Matches(msg, m.KeyMap.Press):
			return m.PressTab(m.index)
		case key.Matches(msg, m.KeyMap.Top):
			return m.PressTab(0)
		case key.Matches(msg, m.KeyMap.Bottom):
			return m.PressTab(m.Len() - 1)
		}
		return nil
	}

	page := max(1, m.view.Height)
	switch {
	case key.Matches(msg, m.KeyMap.Up):
		return m.ScrollBy(-1)
	case key.Matches(msg, m.KeyMap.Down):
		return m.ScrollBy(1)
	case key.Matches(msg, m.KeyMap.PageUp):
		return m.ScrollBy(-page)
	case key.Matches(msg, m.KeyMap.PageDown):
		return m.ScrollBy(page)
	case key.Matches(msg, m.KeyMap.HalfPageUp):
		return m.ScrollBy(-max(1, page/2))
	case key.Matches(msg, m.KeyMap.HalfPageDown):
		return m.ScrollBy(max(1, page/2))
	case key.Matches(msg, m.KeyMap.Top):
		return m.ScrollTo(0)
	case key.Matches(msg, m.KeyMap.Bottom):
		return m.ScrollTo(m.maxOffset())
	}
	return nil
}

func (m *Model[C, T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	zones := m.props.Zones
	overTabs := zones != nil && zones.Get(m.tabBarZoneID()).InBounds(msg)
	step := m.props.WheelStep

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if overTabs {
			m.ScrollTabBar(-step)
			return nil
		}
		return m.ScrollBy(-step)
	case tea.MouseButtonWheelDown:
		if overTabs {
			m.ScrollTabBar(step)
			return nil
		}
		return m.ScrollBy(step)
	case tea.MouseButtonLeft:
		if zones == nil {
			return nil
		}
		for i := range m.tabBar {
			if zones.Get(m.tabZoneID(i)).InBounds(msg) {
				m.focus = FocusTabBar
				return m.PressTab(i)
			}
		}
		if zones.Get(m.contentZoneID()).InBounds(msg) {
			m.focus = FocusContent
		}
	}
	return nil
}
