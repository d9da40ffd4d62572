package layout

import (
	"fmt"
	"io"

	"github.com/jeremyd1/text-editor/buffer"
)

// Engine is the layout engine. It is the only writer of cell positions and
// the only reader of cursor state for rendering.
//
// An Engine is not safe for concurrent use. Every operation runs to completion
// before the next one may start.
type Engine struct {
	cfg Config
	buf *buffer.Buffer

	cursor     buffer.Point
	lowerBound int

	// goal is the x that consecutive Up/Down presses aim for.
	goal    int
	hasGoal bool

	placements []Placement
	removed    []buffer.NodeID
}

// New returns an engine over an empty sequence. It panics when cfg violates a
// precondition (non-positive wrap width or line height, negative margins).
func New(cfg Config) *Engine {
	cfg = cfg.normalize()
	e := &Engine{
		cfg: cfg,
		buf: buffer.New(),
	}
	e.cursor = e.origin()
	e.lowerBound = cfg.TopMargin
	return e
}

func (e *Engine) Config() Config { return e.cfg }

// Buffer exposes the sequence for read-only walks. Mutating it directly
// bypasses layout.
func (e *Engine) Buffer() *buffer.Buffer { return e.buf }

// Cursor returns the visual cursor position.
func (e *Engine) Cursor() buffer.Point { return e.cursor }

// LowerBound returns the y of the last row.
func (e *Engine) LowerBound() int { return e.lowerBound }

func (e *Engine) Len() int { return e.buf.Len() }

func (e *Engine) Text() string { return e.buf.Text() }

// Placements returns every cell with its current position, start to end.
func (e *Engine) Placements() []Placement {
	out := make([]Placement, 0, e.buf.Len())
	for id, c := range e.buf.All() {
		out = append(out, Placement{ID: id, Cell: c, Pos: e.buf.Pos(id)})
	}
	return out
}

// WriteTo writes the text with one "\n" per line-break marker.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.buf.Text())
	if err != nil {
		return int64(n), fmt.Errorf("write text: %w", err)
	}
	return int64(n), nil
}

func (e *Engine) origin() buffer.Point {
	return buffer.Point{X: e.cfg.LeftMargin, Y: e.cfg.TopMargin}
}

// anchorAfter is the canonical insertion point when the cursor is on id.
func (e *Engine) anchorAfter(id buffer.NodeID) buffer.Point {
	c, ok := e.buf.Cell(id)
	if !ok {
		return e.origin()
	}
	p := e.buf.Pos(id)
	if c.IsLineBreak() {
		return buffer.Point{X: e.cfg.LeftMargin, Y: p.Y + e.cfg.LineHeight}
	}
	return buffer.Point{X: p.X + c.Width, Y: p.Y}
}

func (e *Engine) measure(text string) int {
	w := e.cfg.Measure(text)
	if w < 0 {
		panic(fmt.Sprintf("layout: measure returned negative width %d for %q", w, text))
	}
	return w
}

func (e *Engine) clearGoal() { e.hasGoal = false }

func (e *Engine) record(id buffer.NodeID, c buffer.Cell, p buffer.Point, force bool) {
	if !force && e.buf.Pos(id) == p {
		return
	}
	e.buf.SetPos(id, p)
	e.placements = append(e.placements, Placement{ID: id, Cell: c, Pos: p})
}

func (e *Engine) result() Result {
	r := Result{
		Cursor:     e.cursor,
		Placements: e.placements,
		Removed:    e.removed,
	}
	e.placements = nil
	e.removed = nil
	return r
}
