package buffer

// The scan cursor only traverses. Every call that moves the primary cursor
// re-syncs it, and sweeps call ResetScan when they finish.

// ResetScan moves the scan cursor back onto the primary cursor.
func (b *Buffer) ResetScan() { b.scan = b.cursor }

// ScanID returns the node the scan cursor is on.
func (b *Buffer) ScanID() NodeID { return b.scan }

// ScanNext steps the scan cursor forward and returns the cell it lands on.
// At the end of the sequence it returns false and does not move.
func (b *Buffer) ScanNext() (NodeID, Cell, bool) {
	next := b.links[b.scan].next
	if next == Sentinel {
		return Sentinel, Cell{}, false
	}
	b.scan = next
	return next, b.cells[next], true
}

// ScanPrev returns the cell the scan cursor is on and steps it backward.
// On the sentinel it returns false and does not move.
func (b *Buffer) ScanPrev() (NodeID, Cell, bool) {
	id := b.scan
	if id == Sentinel {
		return Sentinel, Cell{}, false
	}
	b.scan = b.links[id].prev
	return id, b.cells[id], true
}
