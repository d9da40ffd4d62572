package layout

import "github.com/jeremyd1/text-editor/buffer"

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Placement is a cell together with its computed position.
type Placement struct {
	ID   buffer.NodeID
	Cell buffer.Cell
	Pos  buffer.Point
}

// Result is what every On* operation hands back to the renderer: the visual
// cursor, the placements that changed, and the cells that no longer exist.
type Result struct {
	Cursor     buffer.Point
	Placements []Placement
	Removed    []buffer.NodeID
}

// Changed reports whether the operation touched any cell.
func (r Result) Changed() bool {
	return len(r.Placements) > 0 || len(r.Removed) > 0
}
