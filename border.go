package table

import (
	"fmt"
	"strings"
)

// Position identifies where a glyph is drawn.
type Position int

const (
	PositionTop             Position = iota // rule above the first line
	PositionHeaderSeparator                 // rule between header and body
	PositionBottom                          // rule below the last line
	PositionVertical                        // column separator and outer edges
	PositionFill                            // horizontal fill of every rule
)

// RuleGlyphs are the junction glyphs of one rule line. A rule with an empty
// Left glyph is not drawn.
type RuleGlyphs struct {
	Left, Mid, Right string
}

// BorderStyle is the set of glyphs used to draw a table. The zero value draws
// no rules and no verticals, the same as [BorderNone].
//
// BorderStyle values are immutable; build new ones with [NewBorderStyle].
type BorderStyle struct {
	name      string
	top       RuleGlyphs
	separator RuleGlyphs
	bottom    RuleGlyphs
	vertical  string
	fill      string
}

// Built-in border styles.
var (
	// BorderNone separates columns with a single space and draws no rules.
	BorderNone = BorderStyle{name: "none"}

	// BorderASCII draws with + - |.
	BorderASCII = NewBorderStyle("ascii",
		RuleGlyphs{"+", "+", "+"},
		RuleGlyphs{"+", "+", "+"},
		RuleGlyphs{"+", "+", "+"},
		"|", "-",
	)

	// BorderUnicode draws with box-drawing characters ┌┬┐│├┼┤└┴┘─.
	BorderUnicode = NewBorderStyle("unicode",
		RuleGlyphs{"┌", "┬", "┐"},
		RuleGlyphs{"├", "┼", "┤"},
		RuleGlyphs{"└", "┴", "┘"},
		"│", "─",
	)
)

var borders = []BorderStyle{BorderNone, BorderASCII, BorderUnicode}

// NewBorderStyle returns a border style drawing rules with fill and the given
// junctions, and separating columns with vertical. Pass a zero RuleGlyphs to
// omit that rule.
func NewBorderStyle(name string, top, separator, bottom RuleGlyphs, vertical, fill string) BorderStyle {
	return BorderStyle{
		name:      name,
		top:       top,
		separator: separator,
		bottom:    bottom,
		vertical:  vertical,
		fill:      fill,
	}
}

// Name returns the style name.
func (b BorderStyle) Name() string { return b.name }

// String returns the style name.
func (b BorderStyle) String() string { return b.name }

// Glyph returns the glyph drawn at pos, or "" if the style draws nothing
// there. For the rule positions it returns the rule's left glyph.
func (b BorderStyle) Glyph(pos Position) string {
	switch pos {
	case PositionVertical:
		return b.vertical
	case PositionFill:
		return b.fill
	default:
		r, _ := b.Rule(pos)
		return r.Left
	}
}

// Rule returns the junction glyphs of the rule at pos and whether the style
// draws that rule. Non-rule positions always report false.
func (b BorderStyle) Rule(pos Position) (RuleGlyphs, bool) {
	var r RuleGlyphs
	switch pos {
	case PositionTop:
		r = b.top
	case PositionHeaderSeparator:
		r = b.separator
	case PositionBottom:
		r = b.bottom
	default:
		return RuleGlyphs{}, false
	}
	return r, r.Left != ""
}

// HasRule reports whether the style draws the rule at pos.
func (b BorderStyle) HasRule(pos Position) bool {
	_, ok := b.Rule(pos)
	return ok
}

// Borders returns the built-in border styles.
func Borders() []BorderStyle {
	out := make([]BorderStyle, len(borders))
	copy(out, borders)
	return out
}

// BorderNames returns the names of the built-in border styles.
func BorderNames() []string {
	names := make([]string, len(borders))
	for i, b := range borders {
		names[i] = b.name
	}
	return names
}

// ParseBorder returns the built-in border style with the given name.
// Matching ignores case and surrounding whitespace.
func ParseBorder(name string) (BorderStyle, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, b := range borders {
		if b.name == s {
			return b, nil
		}
	}
	return BorderStyle{}, fmt.Errorf("%w: %q", ErrUnknownBorder, name)
}
