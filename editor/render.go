package editor

import (
	"strings"

	"github.com/jeremyd1/text-editor/layout"
)

func (m *Model) renderContent() string {
	e := m.engine
	cur := e.Cursor()

	rows := make([][]layout.Placement, m.rowOf(e.LowerBound())+1)
	for _, p := range e.Placements() {
		r := m.rowOf(p.Pos.Y)
		if r < 0 || r >= len(rows) {
			continue
		}
		rows[r] = append(rows[r], p)
	}

	curRow := -1
	if m.focused {
		curRow = m.rowOf(cur.Y)
	}
	width := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()

	out := make([]string, len(rows))
	for i, cells := range rows {
		cursorX := -1
		if i == curRow {
			cursorX = cur.X
			// The end of a full row lies past the right edge.
			if width > 0 && cursorX >= width {
				cursorX = width - 1
			}
		}
		out[i] = m.renderRow(cells, cursorX)
	}
	return strings.Join(out, "\n")
}

// renderRow draws one row of placements. Gaps between cells (margins, the
// space left by a wrapped cell) are padded with spaces. cursorX < 0 means the
// cursor is not on this row.
func (m *Model) renderRow(cells []layout.Placement, cursorX int) string {
	st := m.cfg.Style

	var sb strings.Builder
	col := 0
	drawn := cursorX < 0
	for _, p := range cells {
		if p.Pos.X > col {
			sb.WriteString(strings.Repeat(" ", p.Pos.X-col))
			col = p.Pos.X
		}
		if p.Cell.IsLineBreak() {
			continue
		}

		text := p.Cell.Text
		if text == "\t" {
			text = strings.Repeat(" ", p.Cell.Width)
		}
		if !drawn && p.Cell.Width > 0 && p.Pos.X <= cursorX && cursorX < p.Pos.X+p.Cell.Width {
			sb.WriteString(m.cursorView(text))
			drawn = true
		} else {
			sb.WriteString(st.Text.Render(text))
		}
		col += p.Cell.Width
	}

	if !drawn {
		if cursorX > col {
			sb.WriteString(strings.Repeat(" ", cursorX-col))
		}
		sb.WriteString(m.cursorView(" "))
	}
	return sb.String()
}

func (m *Model) cursorView(char string) string {
	m.cursor.Style = m.cfg.Style.Cursor
	m.cursor.TextStyle = m.cfg.Style.Text
	m.cursor.SetChar(char)
	return m.cursor.View()
}
