package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "text-editor.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v, want defaults", cfg)
	}

	cfg, err = Load("")
	if err != nil || cfg != Default() {
		t.Fatalf("empty path: cfg=%+v err=%v", cfg, err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
wrap_width = 72
left_margin = 2
tab_width = 8
blink = false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WrapWidth != 72 || cfg.LeftMargin != 2 || cfg.TabWidth != 8 || cfg.Blink {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.LineHeight != 1 || cfg.Measure != MeasureCells {
		t.Fatalf("unset keys lost defaults: %+v", cfg)
	}
}

func TestLoad_InvalidSyntax(t *testing.T) {
	path := writeFile(t, "wrap_width = \n")
	_, err := Load(path)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if pe.Path != path {
		t.Fatalf("path=%q, want %q", pe.Path, path)
	}
	if pe.Line != 1 {
		t.Fatalf("line=%d, want 1", pe.Line)
	}
	if pe.Unwrap() == nil {
		t.Fatalf("missing cause")
	}
}

func TestLoadFromReader_UnknownKeyRejected(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("wrap_widht = 10\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if pe.Path != "<reader>" {
		t.Fatalf("path=%q", pe.Path)
	}
}

func TestLoadFromReader_Validates(t *testing.T) {
	cases := []string{
		"wrap_width = -1",
		"line_height = 0",
		"tab_width = 0",
		"top_margin = -3",
		`measure = "points"`,
	}
	for _, body := range cases {
		if _, err := LoadFromReader(strings.NewReader(body)); err == nil {
			t.Fatalf("%q: expected error", body)
		}
	}
}

func TestLayout(t *testing.T) {
	cfg := Default()
	lc := cfg.Layout(80)
	if lc.WrapWidth != 80 || lc.LineHeight != 1 {
		t.Fatalf("layout=%+v", lc)
	}
	if got := lc.Measure("\t"); got != 4 {
		t.Fatalf("tab width=%d, want 4", got)
	}

	cfg.WrapWidth = 40
	if got := cfg.Layout(80).WrapWidth; got != 40 {
		t.Fatalf("file wrap width ignored: %d", got)
	}

	cfg.Measure = MeasureFont
	lc = cfg.Layout(500)
	if got := lc.Measure("a"); got != 7 {
		t.Fatalf("font measure=%d, want 7", got)
	}
	if lc.LineHeight != 13 {
		t.Fatalf("font line height=%d, want 13", lc.LineHeight)
	}
}
