package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/jask/vtabs/core"
	"github.com/jask/vtabs/verticaltabs"
	"github.com/jask/vtabs/widgets"
)

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Padding(0, 1)
	tabActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Background(lipgloss.Color("#313244")).Bold(true).Padding(0, 1)
	tabBarStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#181825"))
)

type Options struct {
	Seed        int64
	Sections    int
	TabBarWidth int
	WheelStep   int
	Animate     bool
	Theme       string
	Zones       *zone.Manager
	Logger      *zerolog.Logger
}

// Page is the classification screen hosted by core.Model.
type Page struct {
	opts Options
	seed int64
	data []Category
	tabs verticaltabs.Model[Category, Category]
	md   *markdown
	log  zerolog.Logger
}

func NewPage(opts Options) *Page {
	if opts.Sections <= 0 {
		opts.Sections = DefaultSections
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "demo").Logger()
	}
	p := &Page{opts: opts, seed: opts.Seed, log: log}
	p.md = newMarkdown(opts.Theme, log)
	p.tabs = verticaltabs.New(verticaltabs.Props[Category, Category]{
		RenderContent: p.renderSection,
		RenderTabBar:  renderTab,
		ContentKey:    categoryKey,
		TabBarKey:     categoryKey,
		TabBarWidth:   opts.TabBarWidth,
		TabBarStyle:   tabBarStyle,
		Animate:       opts.Animate,
		WheelStep:     opts.WheelStep,
		Zones:         opts.Zones,
		Logger:        opts.Logger,
	})
	p.load()
	return p
}

func categoryKey(c Category, _ int) string { return c.Key }

func renderTab(c Category, _ int, active bool, width int) string {
	style := tabStyle
	if active {
		style = tabActiveStyle
	}
	name := ansi.Truncate(c.Name, max(1, width-2), "…")
	return style.Width(width).MaxWidth(width).Render(name)
}

func (p *Page) renderSection(c Category, _ int, width int) string {
	return widgets.Pane{
		Title:   fmt.Sprintf("%s · %d items", c.Name, len(c.Products)),
		Height:  c.Rows,
		Content: p.md.render(c, width-4),
	}.Render(width, 0)
}

func (p *Page) load() {
	p.data = Generate(p.seed, p.opts.Sections)
	p.md.reset()
	p.tabs.SetDataSource(p.data, p.data)
	p.log.Debug().Int64("seed", p.seed).Int("sections", len(p.data)).Msg("data loaded")
}

func (p *Page) Init() tea.Cmd { return nil }

func (p *Page) Title() string { return "Classification" }

func (p *Page) Categories() []Category { return p.data }

func (p *Page) Tabs() verticaltabs.Model[Category, Category] { return p.tabs }

func (p *Page) ShortHelp() []key.Binding { return p.tabs.KeyMap.ShortHelp() }

func (p *Page) JumpTargets() []core.JumpTarget {
	out := make([]core.JumpTarget, 0, len(p.data))
	for _, c := range p.data {
		out = append(out, core.JumpTarget{Key: c.Key, Label: c.Name})
	}
	return out
}

func (p *Page) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.BodySizeMsg:
		p.tabs.SetSize(msg.Width, msg.Height)
		return nil
	case verticaltabs.IndexChangeMsg:
		if msg.ID != p.tabs.ID() || msg.Index >= len(p.data) {
			return nil
		}
		m.SetStatus(fmt.Sprintf("%s (%d/%d, %s)", p.data[msg.Index].Name, msg.Index+1, len(p.data), msg.Source))
		return nil
	case core.JumpTargetSelectedMsg:
		i := indexOfKey(p.data, msg.Key)
		if i < 0 {
			return core.ErrorCmd(fmt.Errorf("unknown section %q", msg.Key))
		}
		if i == p.tabs.Index() {
			m.SetStatus(p.data[i].Name)
		}
		return p.tabs.PressTab(i)
	case core.ActionMsg:
		return p.handleAction(m, msg.Action)
	}
	var cmd tea.Cmd
	p.tabs, cmd = p.tabs.Update(msg)
	return cmd
}

func (p *Page) handleAction(m *core.Model, action string) tea.Cmd {
	switch action {
	case "toggle-animate":
		p.tabs.SetAnimate(!p.tabs.Animate())
		if p.tabs.Animate() {
			m.SetStatus("Animation on")
		} else {
			m.SetStatus("Animation off")
		}
		return nil
	case "reshuffle":
		p.seed++
		p.load()
		m.SetStatus(fmt.Sprintf("Generated %d sections (seed %d)", len(p.data), p.seed))
		return p.tabs.SetIndex(0)
	}
	return nil
}

func (p *Page) View(width, height int) string {
	return widgets.FitHeight(p.tabs.View(), height)
}
