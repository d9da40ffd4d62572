package buffer

// LineBreak is the reserved Text of a line-break marker cell.
// No visible character is ever stored as a bare "\n".
const LineBreak = "\n"

// NodeID addresses a node in the sequence arena.
type NodeID int

// Sentinel is the boundary node. It never holds a Cell.
const Sentinel NodeID = 0

// Cell is one atomic character unit.
type Cell struct {
	// Text is the unit as inserted, or LineBreak for a marker.
	Text string

	// Width is the cached measured width, in the host's units.
	Width int
}

// IsLineBreak reports whether c is a line-break marker.
func (c Cell) IsLineBreak() bool { return c.Text == LineBreak }

// Point is the last computed visual position of a cell, or of the cursor.
type Point struct {
	X int
	Y int
}

type link struct {
	prev NodeID
	next NodeID
	live bool
}
