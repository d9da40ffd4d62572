package editor

import "github.com/jeremyd1/text-editor/layout"

// DefaultWidth is the wrap width used before the first size message when the
// wrap width follows the terminal.
const DefaultWidth = 80

// Config configures the editor Model.
type Config struct {
	// Initial text, loaded with the cursor at the start.
	Text string

	// Path is where Save writes. Empty disables saving.
	Path string

	// Layout is the engine geometry in terminal cells. A zero WrapWidth
	// follows the width passed to SetSize.
	Layout layout.Config

	Style  Style
	KeyMap KeyMap

	// Blink makes the cursor blink while focused.
	Blink bool

	ScrollPolicy ScrollPolicy

	// OnChange is called synchronously from Update when the text or the
	// cursor changed.
	OnChange func(ChangeEvent)
}

func (c Config) followsWidth() bool { return c.Layout.WrapWidth == 0 }

func (c Config) normalize() Config {
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Layout.LineHeight == 0 {
		c.Layout.LineHeight = 1
	}
	if c.Layout.Measure == nil {
		c.Layout.Measure = layout.CellMeasure(layout.DefaultTabWidth)
	}
	if c.followsWidth() {
		c.Layout.WrapWidth = DefaultWidth
	}
	return c
}
