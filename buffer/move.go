package buffer

// Cursor returns the primary cursor node.
func (b *Buffer) Cursor() NodeID { return b.cursor }

// AtStart reports whether the cursor is on the sentinel.
func (b *Buffer) AtStart() bool { return b.cursor == Sentinel }

// SetCursor jumps the primary cursor to id. It returns false, leaving the
// cursor unchanged, when id is not a live node.
func (b *Buffer) SetCursor(id NodeID) bool {
	if !b.valid(id) {
		return false
	}
	b.cursor = id
	b.scan = id
	return true
}

// Advance moves the cursor to its successor. Stepping off the last cell lands
// on the sentinel; on an empty sequence it stays put.
func (b *Buffer) Advance() {
	b.step(b.links[b.cursor].next)
}

// Retreat moves the cursor to its predecessor.
func (b *Buffer) Retreat() {
	b.step(b.links[b.cursor].prev)
}

func (b *Buffer) step(to NodeID) {
	if to == b.cursor {
		return
	}
	b.cursor = to
	b.scan = to
}

// Current returns the cell the cursor is on.
func (b *Buffer) Current() (NodeID, Cell, bool) {
	return b.at(b.cursor)
}

// PeekNext returns the cell after the cursor without moving. At the sentinel
// that is the first cell.
func (b *Buffer) PeekNext() (NodeID, Cell, bool) {
	return b.at(b.links[b.cursor].next)
}

// PeekPrev returns the cell before the cursor without moving. At the
// sentinel that is the last cell.
func (b *Buffer) PeekPrev() (NodeID, Cell, bool) {
	return b.at(b.links[b.cursor].prev)
}

func (b *Buffer) at(id NodeID) (NodeID, Cell, bool) {
	if id == Sentinel {
		return Sentinel, Cell{}, false
	}
	return id, b.cells[id], true
}

// SnapshotAndRewind saves the cursor and moves it to the start, so a caller
// can re-scan the whole sequence. Pair with Restore.
func (b *Buffer) SnapshotAndRewind() {
	b.saved = b.cursor
	b.cursor = Sentinel
	b.scan = Sentinel
}

// Restore returns the cursor to the node saved by SnapshotAndRewind.
func (b *Buffer) Restore() {
	if !b.valid(b.saved) {
		b.saved = Sentinel
	}
	b.cursor = b.saved
	b.scan = b.saved
	b.saved = Sentinel
}
