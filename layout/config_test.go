package layout

import "testing"

func TestNew_DefaultsZeroFields(t *testing.T) {
	e := New(Config{})
	cfg := e.Config()
	if cfg.WrapWidth != DefaultWrapWidth || cfg.LineHeight != DefaultLineHeight {
		t.Fatalf("cfg=%+v, want default wrap width and line height", cfg)
	}
	if cfg.Measure == nil {
		t.Fatalf("measure not defaulted")
	}
	if e.Cursor() != pt(0, 0) {
		t.Fatalf("cursor=%v, want origin", e.Cursor())
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WrapWidth != 500 || cfg.LeftMargin != 5 || cfg.RightMargin != 5 || cfg.TopMargin != 0 {
		t.Fatalf("cfg=%+v", cfg)
	}
	e := New(cfg)
	if e.Cursor() != pt(5, 0) {
		t.Fatalf("cursor=%v, want (5,0)", e.Cursor())
	}
}

func TestNew_PanicsOnBadGeometry(t *testing.T) {
	bad := []Config{
		{WrapWidth: -1},
		{LineHeight: -2},
		{LeftMargin: -1},
		{TopMargin: -1},
	}
	for _, cfg := range bad {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("New(%+v) did not panic", cfg)
				}
			}()
			New(cfg)
		}()
	}
}
