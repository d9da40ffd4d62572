package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
)

// MeasureFunc returns the width of one inserted unit. It must never return a
// negative width.
type MeasureFunc func(text string) int

// CellMeasure measures in terminal cells. A tab counts as tabWidth cells.
func CellMeasure(tabWidth int) MeasureFunc {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return func(text string) int {
		if text == "\t" {
			return tabWidth
		}
		w := runewidth.StringWidth(text)
		if w == 0 {
			w = uniseg.StringWidth(text)
		}
		return w
	}
}

// FontMeasure measures the advance of text in face, in whole pixels.
func FontMeasure(face font.Face) MeasureFunc {
	return func(text string) int {
		if face == nil || text == "" {
			return 0
		}
		adv := font.MeasureString(face, text)
		// 26.6 fixed point, rounded to the nearest pixel.
		px := (int(adv) + 32) >> 6
		if px < 0 {
			px = 0
		}
		return px
	}
}

// FixedMeasure gives every unit the same width.
func FixedMeasure(w int) MeasureFunc {
	return func(string) int { return w }
}
