package table

import "fmt"

// Rower provides the cells of one body row. Used by [FromItems].
type Rower interface {
	Row() []string
}

// Headed provides the header cells. Checked on the first item passed to
// [FromItems]; without it the Grid has no header.
type Headed interface {
	Header() []string
}

// Grid is the normalized header and body rows of a table. Rows may be jagged:
// a row shorter than [Grid.ColumnCount] reads as empty strings past its end.
//
// A Grid is immutable once constructed and safe for concurrent reads.
type Grid struct {
	header    []string
	hasHeader bool
	rows      [][]string
	cols      int
}

// New returns a Grid with body rows and no header.
func New(rows [][]string) *Grid {
	return build(nil, false, rows)
}

// NewWithHeader returns a Grid with a header row and body rows. A nil header
// is still a header; use [New] for a headerless table.
func NewWithHeader(header []string, rows [][]string) *Grid {
	return build(header, true, rows)
}

// FromItems builds a Grid from items implementing [Rower]. If the first item
// also implements [Headed], its header becomes the table header. Any item
// that is not a Rower yields [ErrMissingInterface].
func FromItems[T any](items ...T) (*Grid, error) {
	if len(items) == 0 {
		return New(nil), nil
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return nil, fmt.Errorf("%w: Rower, not implemented by %T", ErrMissingInterface, items[0])
	}
	rows := make([][]string, len(items))
	for i, item := range items {
		r, ok := any(item).(Rower)
		if !ok {
			return nil, fmt.Errorf("%w: Rower, not implemented by %T", ErrMissingInterface, item)
		}
		rows[i] = r.Row()
	}
	if h, ok := first.(Headed); ok {
		return NewWithHeader(h.Header(), rows), nil
	}
	return New(rows), nil
}

func build(header []string, hasHeader bool, rows [][]string) *Grid {
	g := &Grid{hasHeader: hasHeader}
	if hasHeader {
		g.header = clone(header)
	}
	g.rows = make([][]string, len(rows))
	for i, row := range rows {
		g.rows[i] = clone(row)
	}
	g.cols = colCount(g.header, g.rows)
	return g
}

func clone(cells []string) []string {
	out := make([]string, len(cells))
	copy(out, cells)
	return out
}

func colCount(header []string, rows [][]string) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// ColumnCount returns the length of the longest of the header and all rows.
func (g *Grid) ColumnCount() int { return g.cols }

// Len returns the number of body rows.
func (g *Grid) Len() int { return len(g.rows) }

// HasHeader reports whether the Grid was built with a header.
func (g *Grid) HasHeader() bool { return g.hasHeader }

// IsEmpty reports whether there is nothing to draw: no header and no rows,
// or no columns at all.
func (g *Grid) IsEmpty() bool { return g.cols == 0 || (!g.hasHeader && len(g.rows) == 0) }

// Cell returns the body cell at (row, col). Out-of-range indices, including
// cells past the end of a jagged row, return "".
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.rows) {
		return ""
	}
	return cellAt(g.rows[row], col)
}

// HeaderCell returns the header cell at col, or "" if there is none.
func (g *Grid) HeaderCell(col int) string {
	return cellAt(g.header, col)
}

// Header returns a copy of the header cells, or nil without a header.
func (g *Grid) Header() []string {
	if !g.hasHeader {
		return nil
	}
	return clone(g.header)
}

// Rows returns a copy of the body rows as given, without padding.
func (g *Grid) Rows() [][]string {
	out := make([][]string, len(g.rows))
	for i, row := range g.rows {
		out[i] = clone(row)
	}
	return out
}

func cellAt(cells []string, col int) string {
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}
