package layout

import "fmt"

const (
	DefaultWrapWidth  = 500
	DefaultMargin     = 5
	DefaultLineHeight = 15
	DefaultTabWidth   = 4
)

// Config fixes the geometry the engine lays text into. WrapWidth is the only
// field that changes after construction (see Engine.OnResize).
type Config struct {
	// WrapWidth is the full window width. Cells wrap once they would cross
	// WrapWidth - RightMargin.
	WrapWidth int

	LeftMargin  int
	RightMargin int
	TopMargin   int

	// LineHeight is the fixed distance between rows.
	LineHeight int

	// Measure returns the width of one inserted unit. Defaults to
	// CellMeasure(DefaultTabWidth).
	Measure MeasureFunc
}

// DefaultConfig returns the geometry of a 500px window with 5px margins.
// Callers still choose the MeasureFunc.
func DefaultConfig() Config {
	return Config{
		WrapWidth:   DefaultWrapWidth,
		LeftMargin:  DefaultMargin,
		RightMargin: DefaultMargin,
		TopMargin:   0,
		LineHeight:  DefaultLineHeight,
	}
}

func (c Config) normalize() Config {
	if c.WrapWidth == 0 {
		c.WrapWidth = DefaultWrapWidth
	}
	if c.LineHeight == 0 {
		c.LineHeight = DefaultLineHeight
	}
	if c.Measure == nil {
		c.Measure = CellMeasure(DefaultTabWidth)
	}
	mustPositive("wrap width", c.WrapWidth)
	mustPositive("line height", c.LineHeight)
	if c.LeftMargin < 0 || c.RightMargin < 0 || c.TopMargin < 0 {
		panic(fmt.Sprintf("layout: negative margin (left=%d right=%d top=%d)", c.LeftMargin, c.RightMargin, c.TopMargin))
	}
	return c
}

func mustPositive(what string, v int) {
	if v <= 0 {
		panic(fmt.Sprintf("layout: %s must be positive, got %d", what, v))
	}
}
