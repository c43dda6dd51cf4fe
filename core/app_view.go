package core

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/vtabs/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyWidth, bodyHeight := m.bodySize()

	var body string
	if m.page != nil && bodyHeight > 0 {
		body = m.page.View(bodyWidth, bodyHeight)
	}
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		popup := top.View(max(20, bodyWidth-12), max(6, bodyHeight-6))
		body = widgets.RenderPopup(body, popup, bodyWidth, bodyHeight)
	}
	body = widgets.FitHeight(body, bodyHeight)

	parts := []string{header, status}
	if bodyHeight > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, footer)
	view := widgets.FitHeight(strings.Join(parts, "\n"), max(1, m.height))
	view = appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
	if m.zones != nil {
		view = m.zones.Scan(view)
	}
	return view
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(m.title)
	right := ""
	if m.page != nil {
		right = headerPageStyle.Render(m.page.Title())
	}
	if top := m.screens.Top(); top != nil {
		right = headerPageStyle.Render(top.Title())
	}
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}
