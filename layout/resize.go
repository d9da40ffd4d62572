package layout

// OnResize re-wraps the whole text for a new wrap width. The cursor keeps its
// logical node; its visual position is re-derived from that node's new
// placement. This is the only operation that goes from logical to visual.
func (e *Engine) OnResize(wrapWidth int) Result {
	mustPositive("wrap width", wrapWidth)
	e.clearGoal()
	e.cfg.WrapWidth = wrapWidth
	e.reflowAll()
	e.cursor = e.anchorAfter(e.buf.Cursor())
	return e.result()
}
