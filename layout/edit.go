package layout

import (
	"github.com/jeremyd1/text-editor/buffer"
	"github.com/jeremyd1/text-editor/internal/grapheme"
)

// OnCharacter inserts one unit after the cursor. Line terminators insert a
// line-break marker; empty text is a no-op.
func (e *Engine) OnCharacter(text string) Result {
	switch text {
	case "":
		return e.result()
	case "\n", "\r", "\r\n":
		return e.OnEnter()
	}
	return e.insert(buffer.Cell{Text: text, Width: e.measure(text)})
}

// OnEnter inserts a line-break marker after the cursor.
func (e *Engine) OnEnter() Result {
	return e.insert(buffer.Cell{Text: buffer.LineBreak})
}

// OnBackspace removes the cell the cursor sits after. No-op at the start.
func (e *Engine) OnBackspace() Result {
	e.clearGoal()
	id := e.buf.Cursor()
	if _, ok := e.buf.RemoveBeforeCursor(); !ok {
		return e.result()
	}
	e.removed = append(e.removed, id)
	e.cursor = e.anchorAfter(e.buf.Cursor())
	e.reflow(e.newFlow(e.cursor))
	return e.result()
}

// InsertText inserts s one grapheme cluster at a time, as if typed.
func (e *Engine) InsertText(s string) Result {
	var acc Result
	for _, unit := range grapheme.Split(s) {
		r := e.OnCharacter(unit)
		acc.Placements = mergePlacements(acc.Placements, r.Placements)
		acc.Removed = append(acc.Removed, r.Removed...)
	}
	acc.Cursor = e.cursor
	return acc
}

// LoadText inserts s after the cursor without laying out each unit, then
// moves the cursor to the start of the text and lays everything out once.
func (e *Engine) LoadText(s string) Result {
	e.clearGoal()
	for _, unit := range grapheme.Split(s) {
		switch unit {
		case "\n", "\r", "\r\n":
			e.buf.Insert(buffer.Cell{Text: buffer.LineBreak})
		default:
			e.buf.Insert(buffer.Cell{Text: unit, Width: e.measure(unit)})
		}
	}
	e.buf.SetCursor(buffer.Sentinel)
	e.cursor = e.origin()
	e.reflow(e.newFlow(e.cursor))

	// Fresh cells have no previous position to diff against.
	r := e.result()
	r.Placements = e.Placements()
	return r
}

func (e *Engine) insert(c buffer.Cell) Result {
	e.clearGoal()
	f := e.newFlow(e.anchorAfter(e.buf.Cursor()))
	id := e.buf.Insert(c)
	e.record(id, c, f.place(c), true)
	e.reflow(f)
	e.cursor = e.anchorAfter(id)
	return e.result()
}

// mergePlacements appends next to acc, keeping only the latest placement per
// cell.
func mergePlacements(acc, next []Placement) []Placement {
	if len(acc) == 0 {
		return next
	}
	idx := make(map[buffer.NodeID]int, len(acc))
	for i, p := range acc {
		idx[p.ID] = i
	}
	for _, p := range next {
		if i, ok := idx[p.ID]; ok {
			acc[i] = p
			continue
		}
		idx[p.ID] = len(acc)
		acc = append(acc, p)
	}
	return acc
}
