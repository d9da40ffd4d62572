package editor

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeremyd1/text-editor/buffer"
	"github.com/jeremyd1/text-editor/layout"
)

// Model is a Bubble Tea component that renders and edits text through a
// layout.Engine.
type Model struct {
	cfg    Config
	engine *layout.Engine

	followWidth bool
	focused     bool

	viewport viewport.Model
	cursor   cursor.Model

	lastVersion uint64
	lastCursor  buffer.Point

	// saved is the buffer version last written to Path.
	saved uint64
}

func New(cfg Config) Model {
	follow := cfg.followsWidth()
	cfg = cfg.normalize()

	m := Model{
		cfg:         cfg,
		engine:      layout.New(cfg.Layout),
		followWidth: follow,
		viewport:    viewport.New(0, 0),
		cursor:      cursor.New(),
	}
	if cfg.Text != "" {
		m.engine.LoadText(cfg.Text)
	}
	if !cfg.Blink {
		m.cursor.SetMode(cursor.CursorStatic)
	}
	m.cursor.Focus()
	m.focused = true

	m.lastVersion = m.engine.Buffer().Version()
	m.lastCursor = m.engine.Cursor()
	m.saved = m.lastVersion
	m.rebuildContent()
	return m
}

// Engine exposes the layout engine. Hosts that edit through it directly
// should follow up with an Update so the view catches up.
func (m Model) Engine() *layout.Engine { return m.engine }

func (m Model) Path() string { return m.cfg.Path }

// Modified reports whether the text changed since New or the last Save.
func (m Model) Modified() bool { return m.engine.Buffer().Version() != m.saved }

func (m Model) Init() tea.Cmd {
	if m.focused && m.cfg.Blink {
		return cursor.Blink
	}
	return nil
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	if m.followWidth && width > 0 && width != m.engine.Config().WrapWidth {
		m.engine.OnResize(width)
	}

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() (Model, tea.Cmd) {
	if m.focused {
		return m, nil
	}
	m.focused = true
	cmd := m.cursor.Focus()
	m.rebuildContent()
	m.followCursor()
	return m, cmd
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.cursor.Blur()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) View() string { return m.viewport.View() }

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the viewport so the cursor row is visible.
func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	row := m.rowOf(m.engine.Cursor().Y)
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m Model) rowOf(y int) int {
	return y / m.engine.Config().LineHeight
}
