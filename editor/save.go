package editor

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoPath = errors.New("editor: no file path")

// Save returns a command that writes the text to Config.Path, creating the
// file if needed. The text is captured when Save is called, so later edits do
// not race with the write.
func (m Model) Save() tea.Cmd {
	path := m.cfg.Path
	if path == "" {
		return func() tea.Msg { return SaveErrMsg{Err: ErrNoPath} }
	}

	var buf bytes.Buffer
	if _, err := m.engine.WriteTo(&buf); err != nil {
		return func() tea.Msg { return SaveErrMsg{Path: path, Err: err} }
	}
	ver := m.engine.Buffer().Version()
	data := buf.Bytes()

	return func() tea.Msg {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return SaveErrMsg{Path: path, Err: fmt.Errorf("save %s: %w", path, err)}
		}
		return SavedMsg{Path: path, Version: ver, Bytes: int64(len(data))}
	}
}
