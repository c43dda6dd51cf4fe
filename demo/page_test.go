package demo

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/vtabs/core"
	"github.com/jask/vtabs/verticaltabs"
)

func newTestApp(t *testing.T) (core.Model, *Page) {
	t.Helper()
	page := NewPage(Options{Seed: 3, Sections: 7, TabBarWidth: 16, Theme: "notty"})
	m := core.NewModel("vtabs", page, nil, nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, page
}

func send(t *testing.T, m core.Model, msg tea.Msg) core.Model {
	t.Helper()
	next, cmd := m.Update(msg)
	out := next.(core.Model)
	for _, follow := range drain(cmd) {
		out = send(t, out, follow)
	}
	return out
}

// drain runs cmd and returns the messages worth feeding back, skipping
// quit and animation ticks.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	case verticaltabs.IndexChangeMsg, core.JumpTargetSelectedMsg, core.StatusMsg:
		return []tea.Msg{msg}
	}
	return nil
}

func TestSectionsKeepGeneratedHeights(t *testing.T) {
	_, page := newTestApp(t)
	entries := page.Tabs().Sections()
	require.Len(t, entries, 7)
	for i, e := range entries {
		require.Equal(t, page.Categories()[i].Rows, e.Height, "section %d", i)
	}
}

func TestNextTabUpdatesStatus(t *testing.T) {
	m, page := newTestApp(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	require.Equal(t, 1, page.Tabs().Index())

	text, isErr := m.Status()
	require.False(t, isErr)
	require.Equal(t, "Women's goods (2/7, press)", text)
	entries := page.Tabs().Sections()
	total := entries[len(entries)-1].Accumulation
	require.Equal(t, min(entries[1].Top(), max(0, total-21)), page.Tabs().Offset())
}

func TestJumpPickerPressesSection(t *testing.T) {
	m, page := newTestApp(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.Equal(t, core.ScopeJumpPicker, m.ActiveScope())
	for _, r := range "book" {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, core.ScopePage, m.ActiveScope())
	require.Equal(t, 6, page.Tabs().Index())
	text, _ := m.Status()
	require.True(t, strings.HasPrefix(text, "Books"), text)
}

func TestUnknownJumpTargetReportsError(t *testing.T) {
	m, _ := newTestApp(t)
	m = send(t, m, core.JumpTargetSelectedMsg{Key: "nope"})
	text, isErr := m.Status()
	require.True(t, isErr)
	require.Contains(t, text, "unknown section")
}

func TestToggleAnimateAndReshuffle(t *testing.T) {
	m, page := newTestApp(t)
	require.False(t, page.Tabs().Animate())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.True(t, page.Tabs().Animate())
	text, _ := m.Status()
	require.Equal(t, "Animation on", text)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	before := page.Categories()[0].Key
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotEqual(t, before, page.Categories()[0].Key)
	require.Equal(t, 0, page.Tabs().Index())
	text, _ = m.Status()
	require.Equal(t, "Generated 7 sections (seed 4)", text)
}

func TestViewShowsTabsAndSections(t *testing.T) {
	m, page := newTestApp(t)
	out := page.View(80, 21)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 21)
	plain := ansi.Strip(out)
	require.Contains(t, plain, "Computers")
	require.Contains(t, plain, "items")

	full := ansi.Strip(m.View())
	require.Contains(t, full, "Classification")
}

func TestSectionsShowEveryProduct(t *testing.T) {
	page := NewPage(Options{Seed: 3, Sections: 7, Theme: "notty"})
	for i, c := range page.Categories() {
		out := ansi.Strip(page.renderSection(c, i, 60))
		require.Len(t, strings.Split(out, "\n"), c.Rows, c.Name)
		last := c.Products[len(c.Products)-1]
		require.Contains(t, out, fmt.Sprintf("%s · $%d", last.Name, last.Price), c.Name)
		require.Equal(t, len(c.Products), strings.Count(out, "$"), "%s lost a product", c.Name)
	}
}
