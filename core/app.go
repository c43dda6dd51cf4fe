package core

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Screen is a modal drawn over the page. Update reports true to be popped.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Page is the single body the shell hosts.
type Page interface {
	Init() tea.Cmd
	Update(m *Model, msg tea.Msg) tea.Cmd
	View(width, height int) string
	Title() string
}

// HelpProvider lets a page add its own bindings to the footer.
type HelpProvider interface {
	ShortHelp() []key.Binding
}

type JumpTarget struct {
	Key   string
	Label string
}

type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
}

type Model struct {
	width     int
	height    int
	title     string
	page      Page
	screens   ScreenStack
	keys      *KeyRegistry
	zones     *zone.Manager
	status    string
	statusErr bool
	quitting  bool
}

// NewModel wraps page in the shell. zones may be nil; when set, the final
// view is scanned so zone hit tests work for the page.
func NewModel(title string, page Page, keys *KeyRegistry, zones *zone.Manager) Model {
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	return Model{
		title:  title,
		page:   page,
		keys:   keys,
		zones:  zones,
		status: "Ready",
		width:  100,
		height: 32,
	}
}

func (m Model) Init() tea.Cmd {
	if m.page == nil {
		return nil
	}
	return m.page.Init()
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return ScopePage
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) Screens() int { return m.screens.Len() }

func (m Model) Quitting() bool { return m.quitting }

// bodySize is the room left for the page under the header and status bar
// and above the footer.
func (m Model) bodySize() (int, int) {
	return max(1, m.width), max(0, m.height-3)
}
