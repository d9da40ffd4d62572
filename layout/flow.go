package layout

import "github.com/jeremyd1/text-editor/buffer"

// flow is the running pen position of a layout sweep.
type flow struct {
	x, y int

	left       int
	limit      int
	lineHeight int
}

func (e *Engine) newFlow(at buffer.Point) flow {
	return flow{
		x:          at.X,
		y:          at.Y,
		left:       e.cfg.LeftMargin,
		limit:      e.cfg.WrapWidth - e.cfg.RightMargin,
		lineHeight: e.cfg.LineHeight,
	}
}

// place returns the position of c and advances the pen past it.
//
// A marker ends the line it sits on, so a marker at the very start of the
// text is the placeholder of an empty first line and advances y exactly once.
// A cell wider than the whole line is never pushed off an empty line.
func (f *flow) place(c buffer.Cell) buffer.Point {
	if c.IsLineBreak() {
		p := buffer.Point{X: f.x, Y: f.y}
		f.newline()
		return p
	}
	if f.x > f.left && f.x+c.Width > f.limit {
		f.newline()
	}
	p := buffer.Point{X: f.x, Y: f.y}
	f.x += c.Width
	return p
}

func (f *flow) newline() {
	f.x = f.left
	f.y += f.lineHeight
}

// reflow lays out every cell after the primary cursor, starting the pen at f.
// The scan cursor does the walking; the primary cursor never moves.
func (e *Engine) reflow(f flow) {
	b := e.buf
	b.ResetScan()
	for {
		id, c, ok := b.ScanNext()
		if !ok {
			break
		}
		e.record(id, c, f.place(c), false)
	}
	b.ResetScan()
	e.lowerBound = f.y
}

// reflowAll lays out the whole sequence from the origin and leaves the
// primary cursor on its original node.
func (e *Engine) reflowAll() {
	e.buf.SnapshotAndRewind()
	e.reflow(e.newFlow(e.origin()))
	e.buf.Restore()
}

// Reflow re-runs layout for everything after the cursor. Without an
// intervening edit it reports no changed placements.
func (e *Engine) Reflow() Result {
	e.reflow(e.newFlow(e.anchorAfter(e.buf.Cursor())))
	return e.result()
}
