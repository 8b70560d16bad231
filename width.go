package table

import "github.com/rivo/uniseg"

// ColumnWidths holds the content width of each column of a [Grid].
type ColumnWidths []int

// Widths computes the width of every column: the longest cell in that column
// across the header and all rows, with missing cells counting as 0.
// The result is freshly allocated on every call.
func Widths(g *Grid) ColumnWidths {
	widths := make(ColumnWidths, g.ColumnCount())
	for i, h := range g.header {
		if w := CellWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range g.rows {
		for i, cell := range row {
			if w := CellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// CellWidth returns the length of s in user-perceived characters.
// Terminal display width is not considered.
func CellWidth(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Len returns the number of columns.
func (cw ColumnWidths) Len() int { return len(cw) }

// At returns the width of column col, or 0 if col is out of range.
func (cw ColumnWidths) At(col int) int {
	if col < 0 || col >= len(cw) {
		return 0
	}
	return cw[col]
}

// Total returns the sum of all column widths.
func (cw ColumnWidths) Total() int {
	n := 0
	for _, w := range cw {
		n += w
	}
	return n
}
