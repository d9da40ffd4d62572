package buffer

// Insert links c directly after the primary cursor and makes it current.
func (b *Buffer) Insert(c Cell) NodeID {
	id := b.alloc(c)
	prev := b.cursor
	next := b.links[prev].next

	b.links[id].prev = prev
	b.links[id].next = next
	b.links[prev].next = id
	b.links[next].prev = id

	b.cursor = id
	b.scan = id
	b.size++
	b.version++
	return id
}

// RemoveBeforeCursor unlinks the cell the cursor sits on and moves the cursor
// to its predecessor. It is a no-op at the start of the sequence.
func (b *Buffer) RemoveBeforeCursor() (Cell, bool) {
	id := b.cursor
	if id == Sentinel {
		return Cell{}, false
	}
	c := b.cells[id]
	prev := b.links[id].prev
	next := b.links[id].next

	b.links[prev].next = next
	b.links[next].prev = prev
	b.release(id)

	if b.saved == id {
		b.saved = prev
	}
	b.cursor = prev
	b.scan = prev
	b.size--
	b.version++
	return c, true
}
