package editor

import "github.com/jeremyd1/text-editor/buffer"

// screenToDoc maps viewport-local mouse coordinates to engine coordinates.
//
// Coordinates are in terminal cells relative to the editor's viewport: (0,0)
// is the top-left of the visible content region. The engine does the
// clamping and nearest-edge resolution.
func (m Model) screenToDoc(x, y int) buffer.Point {
	lh := m.engine.Config().LineHeight
	return buffer.Point{X: x, Y: (y + m.viewport.YOffset) * lh}
}

// docToScreen maps engine coordinates to viewport-local coordinates.
//
// ok is false when the point is outside the visible viewport.
func (m Model) docToScreen(p buffer.Point) (x int, y int, ok bool) {
	x = p.X
	y = m.rowOf(p.Y) - m.viewport.YOffset
	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x < 0 || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}
