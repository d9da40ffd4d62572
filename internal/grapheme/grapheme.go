package grapheme

import "github.com/rivo/uniseg"

// Split returns the grapheme clusters of text in order. A "\r\n" pair is a
// single cluster.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
