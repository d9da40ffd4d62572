package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/jeremyd1/text-editor/buffer"
	"github.com/jeremyd1/text-editor/layout"
)

func TestRender_CursorDrawnOverCell(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{Text: r.NewStyle(), Cursor: r.NewStyle().Foreground(lipgloss.Color("#ff0000"))}
	m := New(Config{Text: "ab", Style: st})

	got := m.renderContent()
	want := st.Cursor.Inline(true).Reverse(true).Render("a") + st.Text.Render("b")
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAtLineEndIsABlank(t *testing.T) {
	m := New(Config{Text: "ab\ncd"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	got := ansi.Strip(m.renderContent())
	if want := "ab \ncd"; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}

	m = m.Blur()
	if got, want := ansi.Strip(m.renderContent()), "ab\ncd"; got != want {
		t.Fatalf("blurred render: got %q, want %q", got, want)
	}
}

func TestRender_TabsAndMargins(t *testing.T) {
	m := New(Config{
		Text:   "\tab\nc",
		Layout: layout.Config{WrapWidth: 20, LeftMargin: 2, TopMargin: 1},
	})
	m = m.Blur()

	got := ansi.Strip(m.renderContent())
	if want := "\n      ab\n  c"; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestRender_EmptyTextShowsCursorRow(t *testing.T) {
	m := New(Config{})
	if got, want := ansi.Strip(m.renderContent()), " "; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestRender_CursorAfterFullRowStaysOnScreen(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{Text: r.NewStyle(), Cursor: r.NewStyle().Foreground(lipgloss.Color("#ff0000"))}
	m := New(Config{Style: st})
	m = m.SetSize(4, 3)
	for _, ch := range "abcd" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ch}})
	}
	if got, want := m.engine.Cursor(), (buffer.Point{X: 4, Y: 0}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}

	got := m.renderContent()
	want := st.Text.Render("a") + st.Text.Render("b") + st.Text.Render("c") +
		st.Cursor.Inline(true).Reverse(true).Render("d")
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}

	for i, line := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(line); w > 4 {
			t.Fatalf("line %d is %d cells wide, want at most 4", i, w)
		}
	}
}
