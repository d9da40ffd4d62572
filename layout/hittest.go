package layout

// OnClick moves the cursor to the position nearest the pixel (x, y).
//
// y is quantized down to a row. A row below the last one selects the end of
// the text regardless of x; a row above the first is treated as the first.
func (e *Engine) OnClick(x, y int) Result {
	e.clearGoal()
	row := e.rowAt(y)
	if row > e.lowerBound {
		last := e.buf.Last()
		e.buf.SetCursor(last)
		e.cursor = e.anchorAfter(last)
		return e.result()
	}
	e.seek(row, x)
	return e.result()
}

func (e *Engine) rowAt(y int) int {
	rel := y - e.cfg.TopMargin
	if rel < 0 {
		return e.cfg.TopMargin
	}
	lh := e.cfg.LineHeight
	return e.cfg.TopMargin + rel/lh*lh
}
