package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeremyd1/text-editor/editor"
	"github.com/jeremyd1/text-editor/internal/config"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236"))

	quitKey = key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit"))
)

// app wraps the editor with a one-line status bar.
type app struct {
	editor editor.Model
	keys   editor.KeyMap
	help   help.Model

	path   string
	status string
	failed bool

	width, height int
}

func newApp(path, text string, settings config.Config) app {
	keys := editor.DefaultKeyMap()
	ed := editor.New(editor.Config{
		Text:   text,
		Path:   path,
		Layout: settings.Layout(0),
		Style:  editor.DefaultStyle(),
		KeyMap: keys,
		Blink:  settings.Blink,
	})
	return app{
		editor: ed,
		keys:   keys,
		help:   help.New(),
		path:   path,
	}
}

func (m app) Init() tea.Cmd { return m.editor.Init() }

func (m app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		log.Printf("resize %dx%d", msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return m, tea.Quit
		}
		m.status, m.failed = "", false
	case editor.SavedMsg:
		m.status, m.failed = fmt.Sprintf("wrote %d bytes", msg.Bytes), false
		log.Printf("saved %q (%d bytes)", msg.Path, msg.Bytes)
	case editor.SaveErrMsg:
		m.status, m.failed = msg.Error(), true
		log.Printf("save failed: %v", msg.Err)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m app) View() string {
	return m.editor.View() + "\n" + m.statusLine()
}

func (m app) statusLine() string {
	name := "[no name]"
	if m.path != "" {
		name = filepath.Base(m.path)
	}
	if m.editor.Modified() {
		name += " [+]"
	}

	e := m.editor.Engine()
	cur := e.Cursor()
	row := cur.Y/e.Config().LineHeight + 1
	vs := m.editor.ViewportState()
	parts := []string{name, fmt.Sprintf("%d:%d", row, cur.X+1), fmt.Sprintf("%d rows", vs.TotalRows)}
	left := strings.Join(parts, "  ")

	style := statusStyle
	right := m.help.ShortHelpView(append(m.keys.ShortHelp(), quitKey))
	if m.status != "" {
		right = m.status
		if m.failed {
			style = errorStyle
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return style.Render(left + strings.Repeat(" ", gap) + right)
}
