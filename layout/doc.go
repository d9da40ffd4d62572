// Package layout turns the linear glyph sequence into (x, y) placements and
// owns every editing and navigation operation on it.
//
// Positions are integers in the host's units: pixels for a font-backed
// MeasureFunc, terminal cells for CellMeasure. Rows are LineHeight apart,
// starting at TopMargin.
//
// The logical cursor (a buffer node) and the visual cursor (a Point) agree
// after every operation, except at a soft-wrap boundary, where the same
// logical position can be shown either at the end of one visual line or at
// the start of the next.
package layout
