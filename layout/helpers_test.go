package layout

import (
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/jeremyd1/text-editor/buffer"
)

// Face7x13 glyphs are 7px wide; rows are 13px apart. With 5px margins a
// wrap width of 5+7n+5 fits exactly n cells per line.
func pixelConfig(wrapWidth int) Config {
	return Config{
		WrapWidth:   wrapWidth,
		LeftMargin:  5,
		RightMargin: 5,
		TopMargin:   0,
		LineHeight:  13,
		Measure:     FontMeasure(basicfont.Face7x13),
	}
}

func newPixelEngine(wrapWidth int, text string) *Engine {
	e := New(pixelConfig(wrapWidth))
	typeText(e, text)
	return e
}

func typeText(e *Engine, s string) {
	for _, r := range s {
		e.OnCharacter(string(r))
	}
}

func rowsOf(e *Engine) []int {
	var out []int
	for _, p := range e.Placements() {
		out = append(out, (p.Pos.Y-e.cfg.TopMargin)/e.cfg.LineHeight)
	}
	return out
}

func posOf(e *Engine, i int) buffer.Point {
	ps := e.Placements()
	return ps[i].Pos
}

func idOf(e *Engine, i int) buffer.NodeID {
	ps := e.Placements()
	return ps[i].ID
}

func pt(x, y int) buffer.Point { return buffer.Point{X: x, Y: y} }

func press(e *Engine, dirs ...Direction) {
	for _, d := range dirs {
		e.OnArrow(d)
	}
}

// assertCursorConsistent checks that the visual cursor is either the
// canonical anchor of the logical cursor or, at a soft-wrap boundary, the
// start of the next cell on the following row.
func assertCursorConsistent(t *testing.T, e *Engine) {
	t.Helper()
	b := e.Buffer()
	anchor := e.anchorAfter(b.Cursor())
	if e.Cursor() == anchor {
		return
	}
	if id, _, ok := b.PeekNext(); ok {
		p := b.Pos(id)
		if e.Cursor() == p && p.Y != anchor.Y {
			return
		}
	}
	t.Fatalf("cursor %v inconsistent with logical anchor %v", e.Cursor(), anchor)
}
