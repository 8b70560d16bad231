// Package table lays out rows of strings as aligned plain text for terminal
// display.
//
// A table is a [Grid]: an optional header and body rows. Rows may be jagged;
// cells past the end of a short row read as empty strings. The central entry
// points are [Render] and [Write], which take a Grid and an optional
// [BorderStyle]:
//
//	g := table.NewWithHeader([]string{"name", "age"}, rows)
//	fmt.Print(table.Render(g, table.BorderUnicode))
//
// # Layout
//
// Each column is as wide as its longest cell, header included (see [Widths]).
// Cells are left-aligned and padded on the right. Adjacent cells are separated
// by one space followed by the vertical glyph of the border style.
//
// # Border Styles
//
// Three styles are built in:
//
//   - [BorderNone] — space-separated columns, no rules (default)
//   - [BorderASCII] — + - |
//   - [BorderUnicode] — ┌┬┐│├┼┤└┴┘─
//
// A style is plain data. Use [NewBorderStyle] to define another one, and
// [ParseBorder] to resolve a name given on the command line:
//
//	b, err := table.ParseBorder(flagValue)
//
// # Building Grids
//
// Besides [New] and [NewWithHeader], a Grid can be built from values
// implementing [Rower] (and optionally [Headed]) with [FromItems], or
// collected from an iterator or channel with [FromSeq] and [FromChan].
//
// # Errors
//
// Rendering never fails. The package exports sentinel errors for the
// boundaries that can:
//
//   - [ErrUnknownBorder] — unknown border style name
//   - [ErrMissingInterface] — items don't implement [Rower]
package table
