// Package config loads the editor settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/jeremyd1/text-editor/layout"
)

// Measure modes.
const (
	MeasureCells = "cells"
	MeasureFont  = "font"
)

// Config is the on-disk settings file. Zero WrapWidth means "follow the
// terminal width".
type Config struct {
	WrapWidth   int    `toml:"wrap_width"`
	LeftMargin  int    `toml:"left_margin"`
	RightMargin int    `toml:"right_margin"`
	TopMargin   int    `toml:"top_margin"`
	LineHeight  int    `toml:"line_height"`
	TabWidth    int    `toml:"tab_width"`
	Measure     string `toml:"measure"`
	Blink       bool   `toml:"blink"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		LineHeight: 1,
		TabWidth:   4,
		Measure:    MeasureCells,
		Blink:      true,
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, bytes.NewReader(data), cfg)
}

// LoadFromReader parses r on top of Default.
func LoadFromReader(r io.Reader) (Config, error) {
	return parse("<reader>", r, Default())
}

func parse(source string, r io.Reader, cfg Config) (Config, error) {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return Default(), pe
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Validate rejects values the layout engine would panic on.
func (c Config) Validate() error {
	switch {
	case c.WrapWidth < 0:
		return fmt.Errorf("wrap_width must not be negative, got %d", c.WrapWidth)
	case c.LeftMargin < 0 || c.RightMargin < 0 || c.TopMargin < 0:
		return errors.New("margins must not be negative")
	case c.LineHeight <= 0:
		return fmt.Errorf("line_height must be positive, got %d", c.LineHeight)
	case c.TabWidth <= 0:
		return fmt.Errorf("tab_width must be positive, got %d", c.TabWidth)
	}
	switch c.Measure {
	case MeasureCells, MeasureFont:
	default:
		return fmt.Errorf("measure must be %q or %q, got %q", MeasureCells, MeasureFont, c.Measure)
	}
	return nil
}

// Layout returns the engine geometry for a window wrapWidth units wide. A
// non-zero WrapWidth in the file wins over the window.
func (c Config) Layout(wrapWidth int) layout.Config {
	if c.WrapWidth > 0 {
		wrapWidth = c.WrapWidth
	}
	lc := layout.Config{
		WrapWidth:   wrapWidth,
		LeftMargin:  c.LeftMargin,
		RightMargin: c.RightMargin,
		TopMargin:   c.TopMargin,
		LineHeight:  c.LineHeight,
		Measure:     layout.CellMeasure(c.TabWidth),
	}
	if c.Measure == MeasureFont {
		lc.Measure = layout.FontMeasure(basicfont.Face7x13)
		lc.LineHeight = basicfont.Face7x13.Height
	}
	return lc
}

// ParseError represents an error while parsing a settings file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
