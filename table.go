package table

import (
	"errors"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownBorder    = errors.New("unknown border style")
	ErrMissingInterface = errors.New("missing required interface")
)

// Render lays out g and returns the text, one line per header, body row and
// rule, each terminated by a newline. The style defaults to [BorderNone];
// only the first style argument is used. An empty Grid renders to "".
func Render(g *Grid, style ...BorderStyle) string {
	var sb strings.Builder
	// strings.Builder never fails a write.
	_ = Write(&sb, g, style...)
	return sb.String()
}

// Write lays out g like [Render] and writes the lines to w. The only error
// returned is one from w.
func Write(w io.Writer, g *Grid, style ...BorderStyle) error {
	b := BorderNone
	if len(style) > 0 {
		b = style[0]
	}
	return writeTable(w, g, Widths(g), b)
}
