// Package buffer implements the glyph sequence behind the editor: an ordered,
// circular, doubly linked list of character cells stored in an arena.
//
// Node 0 is the sentinel. It is never a cell and is its own neighbour when the
// sequence is empty. The primary cursor names the cell immediately before the
// insertion point (the sentinel means "start of text"); the scan cursor is a
// second, read-only traversal pointer used by layout sweeps.
package buffer
