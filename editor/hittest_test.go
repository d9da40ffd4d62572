package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeremyd1/text-editor/buffer"
	"github.com/jeremyd1/text-editor/layout"
)

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestHitTest_ClampsAndYOffset(t *testing.T) {
	m := New(Config{Text: "abc\ndef\nghi"})
	m = m.SetSize(10, 2)
	m.viewport.SetYOffset(1)

	if got := m.screenToDoc(2, 0); got != (buffer.Point{X: 2, Y: 1}) {
		t.Fatalf("doc point at (2,0) with yoffset=1: got %v, want %v", got, buffer.Point{X: 2, Y: 1})
	}

	// Past the end of the line lands before the line break.
	m, _ = m.Update(leftClick(9, 0))
	if got := m.engine.Cursor(); got != (buffer.Point{X: 3, Y: 1}) {
		t.Fatalf("cursor after click past line end: got %v, want %v", got, buffer.Point{X: 3, Y: 1})
	}
}

func TestHitTest_OutOfBoundsIgnored(t *testing.T) {
	m := New(Config{Text: "abc\ndef"})
	m = m.SetSize(5, 2)

	m, _ = m.Update(leftClick(5, 1))
	m, _ = m.Update(leftClick(1, 2))
	if got := m.engine.Cursor(); got != (buffer.Point{}) {
		t.Fatalf("cursor after out-of-bounds clicks: got %v, want origin", got)
	}
}

func TestHitTest_LineHeightScalesRows(t *testing.T) {
	m := New(Config{Text: "ab\ncd", Layout: layout.Config{LineHeight: 3}})
	m = m.SetSize(10, 4)

	if got := m.screenToDoc(1, 1); got != (buffer.Point{X: 1, Y: 3}) {
		t.Fatalf("doc point: got %v, want %v", got, buffer.Point{X: 1, Y: 3})
	}
	x, y, ok := m.docToScreen(buffer.Point{X: 1, Y: 3})
	if !ok || x != 1 || y != 1 {
		t.Fatalf("screen point: got (%d,%d,%v), want (1,1,true)", x, y, ok)
	}
}
