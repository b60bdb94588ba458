// Package margin implements per-paragraph leading-margin decorations
// (ordinal numbers and bullets) against the host layout contract.
//
// The host calls MarginWidth for every line while measuring and Paint for
// every visual line while drawing. A decoration only draws on the visual line
// whose start offset equals its anchor, so wrapped continuation lines and
// neighbouring paragraphs are skipped silently.
package margin

import "github.com/riverfjs/richtext-go/internal/paint"

// Line is the geometry of one visual line as reported by the host layout.
type Line struct {
	// X is where this decoration's margin starts; Dir is +1 for left-to-right
	// paragraphs and -1 for right-to-left ones.
	X   int
	Dir int

	Top      int
	Baseline int
	Bottom   int

	// [Start, End) of the visual line in the text.
	Start int
	End   int
	First bool
}

// Spanned is the annotated text being drawn.
type Spanned interface {
	String() string
	// SpanStart returns the anchor offset of d, or -1 when d is not attached.
	SpanStart(d Decoration) int
}

// Decoration is a leading-margin decoration.
type Decoration interface {
	MarginWidth(first bool) int
	Paint(s paint.Surface, st *paint.State, text Spanned, line Line)
}

// anchoredAt reports whether d is anchored at the start of line.
func anchoredAt(d Decoration, text Spanned, line Line) bool {
	if text == nil {
		return false
	}
	return text.SpanStart(d) == line.Start
}
