package buffer

import (
	"iter"
	"strings"
)

// Buffer is the glyph sequence: cells, their cached positions, and the two
// cursors that walk them.
//
// links, cells and pos are parallel arrays indexed by NodeID. Removed slots
// are recycled through free.
type Buffer struct {
	links []link
	cells []Cell
	pos   []Point
	free  []NodeID

	cursor NodeID
	scan   NodeID
	saved  NodeID

	size    int
	version uint64
}

func New() *Buffer {
	return &Buffer{
		links:  []link{{prev: Sentinel, next: Sentinel, live: true}},
		cells:  []Cell{{}},
		pos:    []Point{{}},
		cursor: Sentinel,
		scan:   Sentinel,
		saved:  Sentinel,
	}
}

// Len returns the number of cells, markers included.
func (b *Buffer) Len() int { return b.size }

// Version increments on every insert and removal. Cursor moves leave it
// unchanged.
func (b *Buffer) Version() uint64 { return b.version }

// Cell returns the cell stored at id. ok is false for the sentinel and for
// ids that are not live.
func (b *Buffer) Cell(id NodeID) (Cell, bool) {
	if !b.valid(id) || id == Sentinel {
		return Cell{}, false
	}
	return b.cells[id], true
}

// Pos returns the cached position of id.
func (b *Buffer) Pos(id NodeID) Point {
	if !b.valid(id) {
		return Point{}
	}
	return b.pos[id]
}

// SetPos stores the computed position of id. Only the layout engine calls it.
func (b *Buffer) SetPos(id NodeID, p Point) {
	if !b.valid(id) || id == Sentinel {
		return
	}
	b.pos[id] = p
}

// First returns the first cell's id, or Sentinel when empty.
func (b *Buffer) First() NodeID { return b.links[Sentinel].next }

// Last returns the last cell's id, or Sentinel when empty.
func (b *Buffer) Last() NodeID { return b.links[Sentinel].prev }

// Next returns the successor of id (possibly Sentinel).
func (b *Buffer) Next(id NodeID) NodeID {
	if !b.valid(id) {
		return Sentinel
	}
	return b.links[id].next
}

// Prev returns the predecessor of id (possibly Sentinel).
func (b *Buffer) Prev(id NodeID) NodeID {
	if !b.valid(id) {
		return Sentinel
	}
	return b.links[id].prev
}

// All walks the cells from start to end without touching either cursor.
func (b *Buffer) All() iter.Seq2[NodeID, Cell] {
	return func(yield func(NodeID, Cell) bool) {
		for id := b.First(); id != Sentinel; id = b.links[id].next {
			if !yield(id, b.cells[id]) {
				return
			}
		}
	}
}

// Text returns the sequence as a string. Markers are written as "\n".
func (b *Buffer) Text() string {
	var sb strings.Builder
	for _, c := range b.All() {
		sb.WriteString(c.Text)
	}
	return sb.String()
}

func (b *Buffer) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(b.links) && b.links[id].live
}

func (b *Buffer) alloc(c Cell) NodeID {
	if n := len(b.free); n > 0 {
		id := b.free[n-1]
		b.free = b.free[:n-1]
		b.links[id] = link{live: true}
		b.cells[id] = c
		b.pos[id] = Point{}
		return id
	}
	b.links = append(b.links, link{live: true})
	b.cells = append(b.cells, c)
	b.pos = append(b.pos, Point{})
	return NodeID(len(b.links) - 1)
}

func (b *Buffer) release(id NodeID) {
	b.links[id] = link{}
	b.cells[id] = Cell{}
	b.pos[id] = Point{}
	b.free = append(b.free, id)
}
