package editor

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeremyd1/text-editor/layout"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		cmds = append(cmds, cmd)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		cmds = append(cmds, cmd)
	case SavedMsg:
		if msg.Path == m.cfg.Path {
			m.saved = msg.Version
		}
	}

	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	cmds = append(cmds, cmd)

	if m.syncFromEngine() {
		m.followCursor()
		if m.cursor.Mode() == cursor.CursorBlink {
			// Keep the cursor solid while it moves.
			m.cursor.Blink = false
			cmds = append(cmds, m.cursor.BlinkCmd())
		}
	}
	m.rebuildContent()
	return m, tea.Batch(cmds...)
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	e := m.engine

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		e.InsertText(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Save):
		return m, m.Save()

	case key.Matches(msg, km.Left):
		e.OnArrow(layout.Left)
	case key.Matches(msg, km.Right):
		e.OnArrow(layout.Right)
	case key.Matches(msg, km.Up):
		e.OnArrow(layout.Up)
	case key.Matches(msg, km.Down):
		e.OnArrow(layout.Down)

	case key.Matches(msg, km.Backspace):
		e.OnBackspace()
	case key.Matches(msg, km.Enter):
		e.OnEnter()

	default:
		switch {
		case msg.Type == tea.KeyTab:
			e.OnCharacter("\t")
		case msg.Type == tea.KeySpace:
			e.OnCharacter(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			e.InsertText(string(msg.Runes))
		}
	}
	return m, nil
}

// syncFromEngine fires OnChange when the text or cursor moved since the last
// call and reports whether anything changed.
func (m *Model) syncFromEngine() bool {
	ver := m.engine.Buffer().Version()
	cur := m.engine.Cursor()
	if ver == m.lastVersion && cur == m.lastCursor {
		return false
	}
	m.lastVersion = ver
	m.lastCursor = cur
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{
			Version: ver,
			Cursor:  cur,
			Text:    m.engine.Text(),
		})
	}
	return true
}
