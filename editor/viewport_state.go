package editor

import "github.com/jeremyd1/text-editor/buffer"

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// TotalRows is the number of rows the text occupies, including the
	// empty row after a trailing line break.
	TotalRows int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	top := m.viewport.YOffset
	if top < 0 {
		top = 0
	}
	return ViewportState{
		TopRow:      top,
		VisibleRows: m.visibleRowCount(),
		TotalRows:   m.rowOf(m.engine.LowerBound()) + 1,
	}
}

// ScreenToDoc maps viewport-local screen coordinates to engine coordinates.
func (m Model) ScreenToDoc(x, y int) buffer.Point {
	return m.screenToDoc(x, y)
}

// DocToScreen maps engine coordinates to viewport-local screen coordinates.
//
// ok is false when the point is outside the visible viewport content.
func (m Model) DocToScreen(p buffer.Point) (x int, y int, ok bool) {
	return m.docToScreen(p)
}

// CursorScreen returns the cursor's viewport-local position.
func (m Model) CursorScreen() (x int, y int, ok bool) {
	return m.docToScreen(m.engine.Cursor())
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
