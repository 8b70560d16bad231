package table

import (
	"fmt"
	"io"
	"strings"
)

func writeTable(w io.Writer, g *Grid, widths ColumnWidths, b BorderStyle) error {
	if g.IsEmpty() {
		return nil
	}
	if r, ok := b.Rule(PositionTop); ok {
		if err := drawHLine(w, widths, r, b.fill); err != nil {
			return err
		}
	}
	if g.HasHeader() {
		if err := drawRow(w, g.HeaderCell, widths, b.vertical); err != nil {
			return err
		}
		if r, ok := b.Rule(PositionHeaderSeparator); ok {
			if err := drawHLine(w, widths, r, b.fill); err != nil {
				return err
			}
		}
	}
	for i := range g.Len() {
		cell := func(col int) string { return g.Cell(i, col) }
		if err := drawRow(w, cell, widths, b.vertical); err != nil {
			return err
		}
	}
	if r, ok := b.Rule(PositionBottom); ok {
		return drawHLine(w, widths, r, b.fill)
	}
	return nil
}

// drawHLine writes a rule. Every column but the last spans its width plus the
// space that separates it from the next column.
func drawHLine(w io.Writer, widths ColumnWidths, r RuleGlyphs, fill string) error {
	var sb strings.Builder
	sb.WriteString(r.Left)
	for i, width := range widths {
		if i < len(widths)-1 {
			sb.WriteString(strings.Repeat(fill, width+1))
			sb.WriteString(r.Mid)
			continue
		}
		sb.WriteString(strings.Repeat(fill, width))
	}
	sb.WriteString(r.Right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// drawRow writes one content line. Cells are left-aligned and padded to the
// column width; adjacent cells are separated by a space and the vertical.
func drawRow(w io.Writer, cell func(col int) string, widths ColumnWidths, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(alignCell(cell(i), width))
		if i < len(widths)-1 {
			sb.WriteString(" ")
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignCell(s string, width int) string {
	pad := width - CellWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
