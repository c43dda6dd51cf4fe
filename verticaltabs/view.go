package verticaltabs

import (
	"strings"

	"github.com/jask/vtabs/widgets"
)

func (m Model[C, T]) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	tabW := m.tabBarWidth()
	contentW := m.contentWidth()

	tabs := m.props.TabBarStyle.
		Width(tabW).MaxWidth(tabW).
		Height(m.height).MaxHeight(m.height).
		Render(m.tabBarView(tabW))
	content := m.props.ContentStyle.
		Width(contentW).MaxWidth(contentW).
		Height(m.height).MaxHeight(m.height).
		Render(m.view.View())
	if z := m.props.Zones; z != nil {
		tabs = z.Mark(m.tabBarZoneID(), tabs)
		content = z.Mark(m.contentZoneID(), content)
	}

	row := widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.Text(tabs),
			widgets.Fill("│"),
			widgets.Text(content),
			widgets.Scrollbar{Total: m.layout.Total(), Visible: m.view.Height, Offset: m.view.YOffset},
		},
		Widths: []int{tabW, 1, 0, 1},
	}
	return row.Render(m.width, m.height)
}

// tabBarView renders the visible window of the tab bar. Entries cut by the
// window edge keep their hit zone on the rows that remain.
func (m Model[C, T]) tabBarView(width int) string {
	if m.props.RenderTabBar == nil {
		return ""
	}
	blocks := make([]string, 0, len(m.tabBar))
	row := 0
	for i, item := range m.tabBar {
		lines := renderLines(m.props.RenderTabBar(item, i, i == m.index, width), width)
		start := max(0, m.tabOffset-row)
		end := min(len(lines), m.tabOffset+m.height-row)
		row += len(lines)
		if start >= end {
			continue
		}
		visible := lines[start:end]
		for j := range visible {
			visible[j] = widgets.PadRight(visible[j], width)
		}
		block := strings.Join(visible, "\n")
		if m.props.Zones != nil {
			block = m.props.Zones.Mark(m.tabZoneID(i), block)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n")
}
