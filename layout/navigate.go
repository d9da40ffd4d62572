package layout

import "github.com/jeremyd1/text-editor/buffer"

// OnArrow moves the cursor one step. Moves past the text bounds, or past the
// first or last row, are no-ops.
func (e *Engine) OnArrow(d Direction) Result {
	switch d {
	case Left:
		e.clearGoal()
		e.moveLeft()
	case Right:
		e.clearGoal()
		e.moveRight()
	case Up:
		e.moveVertical(-1)
	case Down:
		e.moveVertical(1)
	}
	return e.result()
}

// moveRight crosses the next cell. At a soft-wrap boundary the first press
// only moves the visual cursor to the start of the next line. A marker is
// never a resting position, so a visual-only hop onto one takes one more step.
func (e *Engine) moveRight() {
	b := e.buf
	for step := 0; step < 2; step++ {
		id, c, ok := b.PeekNext()
		if !ok {
			return
		}
		p := b.Pos(id)
		if p.Y != e.cursor.Y {
			e.cursor = p
			if c.IsLineBreak() {
				continue
			}
			return
		}
		b.Advance()
		e.cursor = e.anchorAfter(id)
		return
	}
}

// moveLeft mirrors moveRight using the cell the cursor sits after.
func (e *Engine) moveLeft() {
	b := e.buf
	for step := 0; step < 2; step++ {
		id, c, ok := b.Current()
		if !ok {
			return
		}
		p := b.Pos(id)
		if p.Y != e.cursor.Y {
			e.cursor = buffer.Point{X: p.X + c.Width, Y: p.Y}
			if c.IsLineBreak() {
				continue
			}
			return
		}
		e.cursor = p
		b.Retreat()
		return
	}
}

func (e *Engine) moveVertical(dir int) {
	if dir < 0 && e.cursor.Y <= e.cfg.TopMargin {
		return
	}
	if dir > 0 && e.cursor.Y >= e.lowerBound {
		return
	}
	if !e.hasGoal {
		e.goal = e.cursor.X
		e.hasGoal = true
	}
	e.seek(e.cursor.Y+dir*e.cfg.LineHeight, e.goal)
}

// seek puts the cursor on row y as close to x as the cells allow. The
// candidate is the first cell on the row whose right edge passes x, or the
// row's last visible cell; the cursor lands on whichever of its edges is
// closer to x, preferring the right edge on a tie.
//
// Rows with no visible cell (an empty line, or the empty last line after a
// trailing marker) put the cursor at the start of that row.
func (e *Engine) seek(y, x int) {
	b := e.buf

	// Rewind the scan cursor to the node just before row y.
	b.ResetScan()
	for {
		id := b.ScanID()
		if id == buffer.Sentinel || b.Pos(id).Y < y {
			break
		}
		b.ScanPrev()
	}

	var (
		rowStart     buffer.NodeID
		hasRow       bool
		cand, before buffer.NodeID
		candCell     buffer.Cell
		hasCandidate bool
	)
	for {
		prev := b.ScanID()
		id, c, ok := b.ScanNext()
		if !ok {
			break
		}
		p := b.Pos(id)
		if p.Y < y {
			continue
		}
		if p.Y > y {
			break
		}
		if !hasRow {
			rowStart, hasRow = prev, true
		}
		if c.IsLineBreak() {
			break
		}
		cand, before, candCell, hasCandidate = id, prev, c, true
		if p.X+c.Width > x {
			break
		}
	}
	b.ResetScan()

	switch {
	case hasCandidate:
		p := b.Pos(cand)
		left, right := p.X, p.X+candCell.Width
		if abs(left-x) < abs(right-x) {
			b.SetCursor(before)
			e.cursor = p
		} else {
			b.SetCursor(cand)
			e.cursor = buffer.Point{X: right, Y: p.Y}
		}
	case hasRow:
		b.SetCursor(rowStart)
		e.cursor = e.anchorAfter(rowStart)
	default:
		last := b.Last()
		b.SetCursor(last)
		e.cursor = e.anchorAfter(last)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
