package layout

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestCellMeasure(t *testing.T) {
	m := CellMeasure(4)
	cases := map[string]int{
		"a":       1,
		"\t":      4,
		"\u4e16":  2,
		"e\u0301": 1,
	}
	for in, want := range cases {
		if got := m(in); got != want {
			t.Fatalf("CellMeasure(%q)=%d, want %d", in, got, want)
		}
	}
	if got := CellMeasure(0)("\t"); got != DefaultTabWidth {
		t.Fatalf("default tab width=%d, want %d", got, DefaultTabWidth)
	}
}

func TestFontMeasure(t *testing.T) {
	m := FontMeasure(basicfont.Face7x13)
	if got := m("a"); got != 7 {
		t.Fatalf("a=%d, want 7", got)
	}
	if got := m("ab"); got != 14 {
		t.Fatalf("ab=%d, want 14", got)
	}
	if got := m(""); got != 0 {
		t.Fatalf("empty=%d, want 0", got)
	}
	if got := FontMeasure(nil)("a"); got != 0 {
		t.Fatalf("nil face=%d, want 0", got)
	}
}

func TestFixedMeasure(t *testing.T) {
	if got := FixedMeasure(3)("xyz"); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}
