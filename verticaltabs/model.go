package verticaltabs

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"
)

const (
	DefaultTabBarWidth = 14
	DefaultWheelStep   = 3

	defaultFPS       = 60
	defaultFrequency = 7.0
	defaultDamping   = 1.0
)

// Focus is the pane that receives scroll keys.
type Focus int

const (
	FocusContent Focus = iota
	FocusTabBar
)

// Props configures a Model. RenderContent and RenderTabBar are required.
type Props[C, T any] struct {
	RenderContent func(item C, index, width int) string
	RenderTabBar  func(item T, index int, active bool, width int) string

	// Keys default to the item position.
	ContentKey func(item C, index int) string
	TabBarKey  func(item T, index int) string

	TabBarWidth  int
	TabBarStyle  lipgloss.Style
	ContentStyle lipgloss.Style

	// Animate eases programmatic scrolls with a spring instead of jumping.
	Animate   bool
	FPS       int
	Frequency float64
	Damping   float64

	WheelStep int

	// Zones enables mouse hit testing; the caller must zone.Scan the final view.
	Zones  *zone.Manager
	Logger *zerolog.Logger
}

// Model is a tab bar column synchronized with a scrollable content pane.
type Model[C, T any] struct {
	KeyMap KeyMap

	id      string
	props   Props[C, T]
	tabBar  []T
	content []C

	layout Layout
	view   viewport.Model

	width  int
	height int
	index  int
	focus  Focus

	tabOffset int

	// scrolling is set while the pane is positioned by SetIndex or a tab
	// press; scroll offsets are not mapped back to an index until the user
	// scrolls again.
	scrolling  bool
	dragOffset int

	spring    harmonica.Spring
	animating bool
	seq       int
	target    int
	pos       float64
	vel       float64

	log zerolog.Logger
}

// New builds a Model with defaults filled in. It has no size until SetSize.
func New[C, T any](props Props[C, T]) Model[C, T] {
	if props.ContentKey == nil {
		props.ContentKey = DefaultKey[C]
	}
	if props.TabBarKey == nil {
		props.TabBarKey = DefaultKey[T]
	}
	if props.TabBarWidth <= 0 {
		props.TabBarWidth = DefaultTabBarWidth
	}
	if props.WheelStep <= 0 {
		props.WheelStep = DefaultWheelStep
	}
	if props.FPS <= 0 {
		props.FPS = defaultFPS
	}
	if props.Frequency <= 0 {
		props.Frequency = defaultFrequency
	}
	if props.Damping <= 0 {
		props.Damping = defaultDamping
	}

	id := uuid.NewString()
	logger := zerolog.Nop()
	if props.Logger != nil {
		logger = props.Logger.With().Str("component", "verticaltabs").Str("widget", id).Logger()
	}
	return Model[C, T]{
		KeyMap: DefaultKeyMap(),
		id:     id,
		props:  props,
		view:   viewport.New(0, 0),
		spring: harmonica.NewSpring(harmonica.FPS(props.FPS), props.Frequency, props.Damping),
		log:    logger,
	}
}

func (m Model[C, T]) Init() tea.Cmd { return nil }

func (m Model[C, T]) ID() string { return m.id }

func (m Model[C, T]) Index() int { return m.index }

func (m Model[C, T]) Focused() Focus { return m.focus }

// Offset is the current scroll offset of the content pane in rows.
func (m Model[C, T]) Offset() int { return m.view.YOffset }

// Sections returns the measured height table.
func (m Model[C, T]) Sections() []Entry { return m.layout.Entries() }

// Scrolling reports whether scroll offsets are currently ignored.
func (m Model[C, T]) Scrolling() bool { return m.scrolling }

func (m Model[C, T]) Animating() bool { return m.animating }

func (m Model[C, T]) TabBarOffset() int { return m.tabOffset }

func (m Model[C, T]) Animate() bool { return m.props.Animate }

// SetAnimate switches spring easing on or off. A running animation is
// finished immediately when easing is turned off.
func (m *Model[C, T]) SetAnimate(on bool) {
	m.props.Animate = on
	if !on && m.animating {
		m.stopAnimation()
		m.view.SetYOffset(m.target)
	}
}

// Len is the number of selectable indexes: tab entries and content
// sections are paired, so the shorter list wins.
func (m Model[C, T]) Len() int {
	if len(m.tabBar) == 0 || len(m.tabBar) > len(m.content) {
		return len(m.content)
	}
	return len(m.tabBar)
}

func (m Model[C, T]) clamp(i int) int {
	n := m.Len()
	if n == 0 || i < 0 {
		return 0
	}
	return min(i, n-1)
}

// SetSize resizes both panes and re-measures every section, since
// section heights depend on the content width.
func (m *Model[C, T]) SetSize(width, height int) {
	m.width = max(0, width)
	m.height = max(0, height)
	m.view.Width = m.contentWidth()
	m.view.Height = m.height
	m.relayout()
}

// SetDataSource replaces both lists. The height table is rebuilt from
// scratch so measurements of the previous content never leak through.
// When the active section's ContentKey is still present at a new position,
// the index follows it and the pane snaps to its new offset.
func (m *Model[C, T]) SetDataSource(tabBar []T, content []C) {
	var activeKey string
	hadActive := m.index < len(m.content)
	if hadActive {
		activeKey = m.props.ContentKey(m.content[m.index], m.index)
	}
	m.tabBar = tabBar
	m.content = content
	if hadActive {
		for i, item := range content {
			if m.props.ContentKey(item, i) != activeKey {
				continue
			}
			if i != m.index && i < m.Len() {
				m.log.Debug().Str("key", activeKey).Int("from", m.index).Int("to", i).Msg("active section moved")
				m.index = i
				m.scrolling = true
			}
			break
		}
	}
	m.relayout()
}

func (m *Model[C, T]) relayout() {
	m.measure()
	m.index = m.clamp(m.index)
	if m.scrolling {
		m.stopAnimation()
		m.view.SetYOffset(m.layout.Offset(m.index))
	}
	m.clampTabOffset()
	m.ensureTabVisible()
}

// measure renders every section at the pane width and records its height.
func (m *Model[C, T]) measure() {
	m.layout.Reset()
	w := m.contentWidth()
	if w <= 0 || m.props.RenderContent == nil {
		m.view.SetContent("")
		return
	}
	parts := make([]string, 0, len(m.content))
	for i, item := range m.content {
		lines := renderLines(m.props.RenderContent(item, i, w), w)
		if err := m.layout.Record(i, len(lines)); err != nil {
			m.log.Error().Err(err).Msg("record section height")
			continue
		}
		if len(lines) > 0 {
			parts = append(parts, strings.Join(lines, "\n"))
		}
	}
	m.view.SetContent(strings.Join(parts, "\n"))
	m.log.Debug().Int("sections", m.layout.Len()).Int("rows", m.layout.Total()).Msg("measured content")
}

// renderLines splits rendered output into rows no wider than width.
func renderLines(s string, width int) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return lines
}

func (m Model[C, T]) tabBarWidth() int {
	return min(m.props.TabBarWidth, m.width)
}

// contentWidth leaves room for the tab bar, a separator and the scrollbar.
func (m Model[C, T]) contentWidth() int {
	return max(0, m.width-m.tabBarWidth()-2)
}

func (m Model[C, T]) maxOffset() int {
	return max(0, m.layout.Total()-m.view.Height)
}

// SetIndex activates index i and scrolls the content pane to the top of
// its section. It does not produce an IndexChangeMsg.
func (m *Model[C, T]) SetIndex(i int) tea.Cmd {
	m.index = m.clamp(i)
	m.ensureTabVisible()
	return m.adjustContent(m.index)
}

// PressTab behaves like tapping tab entry i.
func (m *Model[C, T]) PressTab(i int) tea.Cmd {
	if i < 0 || i >= m.Len() {
		return nil
	}
	prev := m.index
	m.index = i
	m.ensureTabVisible()
	cmd := m.adjustContent(i)
	if prev == i {
		return cmd
	}
	m.log.Debug().Int("index", i).Int("previous", prev).Stringer("source", SourcePress).Msg("index change")
	return tea.Batch(cmd, indexChangeCmd(IndexChangeMsg{ID: m.id, Index: i, Previous: prev, Source: SourcePress}))
}

func (m *Model[C, T]) adjustContent(i int) tea.Cmd {
	m.scrolling = true
	m.dragOffset = 0
	target := min(m.layout.Offset(i), m.maxOffset())
	m.log.Debug().Int("index", i).Int("offset", target).Bool("animate", m.props.Animate).Msg("adjust content")
	if !m.props.Animate || m.height <= 0 || target == m.view.YOffset {
		m.stopAnimation()
		m.view.SetYOffset(target)
		return nil
	}
	m.seq++
	m.animating = true
	m.target = target
	m.pos = float64(m.view.YOffset)
	m.vel = 0
	return frameCmd(m.id, m.seq, m.props.FPS)
}

func (m *Model[C, T]) stopAnimation() {
	if m.animating {
		m.seq++
	}
	m.animating = false
	m.vel = 0
}

// step advances the spring one frame. Each frame moves the pane like a
// native scroll event would, and is ignored by HandleScroll for the same
// reason.
func (m *Model[C, T]) step() tea.Cmd {
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, float64(m.target))
	target := float64(m.target)
	done := math.Abs(m.pos-target) < 0.5 && math.Abs(m.vel) < 0.5
	y := int(math.Round(m.pos))
	if done {
		y = m.target
		m.animating = false
	}
	m.view.SetYOffset(y)
	// Frames move the pane like a user scroll would; suppression drops their offsets.
	cmd := m.HandleScroll(m.view.YOffset)
	if done {
		return cmd
	}
	return tea.Batch(cmd, frameCmd(m.id, m.seq, m.props.FPS))
}

// HandleScroll maps a content offset to the section in view and reports
// the change. Offsets are ignored while a programmatic scroll is active.
func (m *Model[C, T]) HandleScroll(offset int) tea.Cmd {
	if m.scrolling {
		return nil
	}
	dir := DirectionOf(m.dragOffset, offset)
	i, ok := m.layout.IndexAt(offset, dir)
	if !ok {
		return nil
	}
	return m.changeIndex(m.clamp(i), SourceScroll)
}

// ScrollBy is a user scroll of the content pane by delta rows. Starting a
// user scroll takes over from any programmatic one.
func (m *Model[C, T]) ScrollBy(delta int) tea.Cmd {
	m.beginDrag()
	m.view.SetYOffset(m.view.YOffset + delta)
	m.endDrag()
	return m.HandleScroll(m.view.YOffset)
}

func (m *Model[C, T]) ScrollTo(offset int) tea.Cmd {
	return m.ScrollBy(offset - m.view.YOffset)
}

func (m *Model[C, T]) beginDrag() {
	m.stopAnimation()
	m.dragOffset = m.view.YOffset
}

func (m *Model[C, T]) endDrag() {
	m.scrolling = false
}

func (m *Model[C, T]) changeIndex(i int, src Source) tea.Cmd {
	if i == m.index {
		return nil
	}
	prev := m.index
	m.index = i
	m.ensureTabVisible()
	m.log.Debug().Int("index", i).Int("previous", prev).Stringer("source", src).Msg("index change")
	return indexChangeCmd(IndexChangeMsg{ID: m.id, Index: i, Previous: prev, Source: src})
}

// tabExtents returns the first row and height of every tab entry.
func (m Model[C, T]) tabExtents() (tops, heights []int) {
	tops = make([]int, len(m.tabBar))
	heights = make([]int, len(m.tabBar))
	if m.props.RenderTabBar == nil {
		return tops, heights
	}
	w := m.tabBarWidth()
	row := 0
	for i, item := range m.tabBar {
		tops[i] = row
		heights[i] = len(renderLines(m.props.RenderTabBar(item, i, i == m.index, w), w))
		row += heights[i]
	}
	return tops, heights
}

func (m *Model[C, T]) ScrollTabBar(delta int) {
	m.tabOffset += delta
	m.clampTabOffset()
}

func (m *Model[C, T]) clampTabOffset() {
	tops, heights := m.tabExtents()
	total := 0
	if n := len(tops); n > 0 {
		total = tops[n-1] + heights[n-1]
	}
	m.tabOffset = max(0, min(m.tabOffset, total-m.height))
}

// ensureTabVisible scrolls the tab bar so the active entry is on screen.
func (m *Model[C, T]) ensureTabVisible() {
	if m.height <= 0 || m.index >= len(m.tabBar) {
		return
	}
	tops, heights := m.tabExtents()
	top, bottom := tops[m.index], tops[m.index]+heights[m.index]
	switch {
	case top < m.tabOffset:
		m.tabOffset = top
	case bottom > m.tabOffset+m.height:
		m.tabOffset = bottom - m.height
		if heights[m.index] > m.height {
			m.tabOffset = top
		}
	}
}

func (m Model[C, T]) tabZoneID(i int) string {
	return m.id + ":tab:" + m.props.TabBarKey(m.tabBar[i], i)
}

func (m Model[C, T]) tabBarZoneID() string { return m.id + ":tabbar" }

func (m Model[C, T]) contentZoneID() string { return m.id + ":content" }
