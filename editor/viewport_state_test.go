package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeremyd1/text-editor/buffer"
)

func TestViewportState_ExposesOffsets(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3"})
	m = m.SetSize(10, 2)

	st := m.ViewportState()
	if st.TopRow != 0 || st.VisibleRows != 2 || st.TotalRows != 4 {
		t.Fatalf("initial viewport state: got %+v", st)
	}

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	st = m.ViewportState()
	if st.TopRow <= 0 {
		t.Fatalf("top row after manual wheel scroll: got %d, want > 0", st.TopRow)
	}
	if got := m.engine.Cursor(); got != (buffer.Point{}) {
		t.Fatalf("wheel moved the cursor to %v", got)
	}
}

func TestViewportState_ScrollFollowCursorOnly_IgnoresManualWheel(t *testing.T) {
	m := New(Config{
		Text:         "0\n1\n2\n3",
		ScrollPolicy: ScrollFollowCursorOnly,
	})
	m = m.SetSize(10, 2)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.ViewportState().TopRow; got != 0 {
		t.Fatalf("top row after manual wheel in follow-cursor mode: got %d, want %d", got, 0)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.ViewportState().TopRow; got != 1 {
		t.Fatalf("top row after cursor-driven movement: got %d, want %d", got, 1)
	}
}

func TestDocScreenMapping_UsesViewportOffsets(t *testing.T) {
	m := New(Config{Text: "ab\ncd\nef"})
	m = m.SetSize(10, 2)
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	top := m.ViewportState().TopRow

	if got := m.ScreenToDoc(1, 0); got != (buffer.Point{X: 1, Y: top}) {
		t.Fatalf("ScreenToDoc at scrolled top: got %v, want %v", got, buffer.Point{X: 1, Y: top})
	}

	x, y, ok := m.DocToScreen(buffer.Point{X: 1, Y: top})
	if !ok || x != 1 || y != 0 {
		t.Fatalf("DocToScreen visible pos: got (x=%d,y=%d,ok=%v), want (1,0,true)", x, y, ok)
	}

	if _, _, ok := m.DocToScreen(buffer.Point{X: 0, Y: 0}); top > 0 && ok {
		t.Fatalf("DocToScreen above viewport reported visible")
	}
	if _, _, ok := m.CursorScreen(); top > 0 && ok {
		t.Fatalf("cursor on row 0 reported visible after scrolling")
	}
}
