package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type jumpPickerScreen struct {
	picker *Picker
	keys   *KeyRegistry
}

func newJumpPickerScreen(targets []JumpTarget, keys *KeyRegistry) *jumpPickerScreen {
	items := make([]PickerItem, 0, len(targets))
	for _, target := range targets {
		if strings.TrimSpace(target.Key) == "" {
			continue
		}
		items = append(items, PickerItem{ID: target.Key, Label: target.Label})
	}
	return &jumpPickerScreen{picker: NewPicker("Jump to section", items), keys: keys}
}

func (s *jumpPickerScreen) Title() string { return s.picker.Title() }
func (s *jumpPickerScreen) Scope() string { return ScopeJumpPicker }

func (s *jumpPickerScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	keyName := keyMsg.String()
	switch {
	case s.keys.IsAction(keyMsg, "close", ScopeJumpPicker):
		keyName = "esc"
	case s.keys.IsAction(keyMsg, "select", ScopeJumpPicker):
		keyName = "enter"
	case keyName == "esc" || keyName == "enter":
		// rebound away; the picker must not see the old key
		return s, nil, false
	case keyMsg.Type == tea.KeySpace:
		keyName = "space"
	}
	result := s.picker.HandleKey(keyName)
	switch result.Action {
	case PickerActionCancelled:
		return s, nil, true
	case PickerActionSelected:
		key := result.Item.ID
		return s, func() tea.Msg { return JumpTargetSelectedMsg{Key: key} }, true
	default:
		return s, nil, false
	}
}

func (s *jumpPickerScreen) View(width, height int) string {
	q := s.picker.Query()
	if strings.TrimSpace(q) == "" {
		q = pickerHintStyle.Render("(type to filter)")
	}
	lines := []string{"Filter: " + q, ""}
	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  No matching sections")
	}
	room := max(1, height-4)
	start := max(0, s.picker.Cursor()-room+1)
	for i := start; i < len(items) && i < start+room; i++ {
		if i == s.picker.Cursor() {
			lines = append(lines, pickerCursorStyle.Render("> "+items[i].Label))
			continue
		}
		lines = append(lines, "  "+items[i].Label)
	}
	lines = append(lines, "", pickerHintStyle.Render("enter jumps · esc cancels"))
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, max(20, width), "")
	}
	return strings.Join(lines, "\n")
}
