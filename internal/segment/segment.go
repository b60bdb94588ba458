// Package segment splits text into paragraph lines and maps 1-based line
// ranges onto the anchor offsets used by leading-margin decorations.
package segment

import (
	"strings"

	"github.com/riverfjs/richtext-go/internal/buffer"
)

// Delimiter separates paragraphs.
const Delimiter = "\n"

// Line is one delimiter-separated paragraph; Start and End are UTF-16 offsets
// and exclude the delimiter.
type Line struct {
	Index int
	Start int
	End   int
	Text  string
}

// Len returns the line length in UTF-16 code units.
func (l Line) Len() int { return l.End - l.Start }

// Degenerate reports whether the line is skipped when assigning decorations.
func (l Line) Degenerate() bool {
	return l.Text == "" || l.Text == Delimiter
}

// Anchor is where a decoration for one qualifying line is attached.
type Anchor struct {
	// Line is the zero-based index of the qualifying line.
	Line   int
	Offset int
	Length int
}

// Split segments text on Delimiter. Trailing empty segments are dropped;
// interior empty segments are kept with their offsets.
func Split(text string) []Line {
	parts := strings.Split(text, Delimiter)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([]Line, 0, len(parts))
	offset := 0
	for i, p := range parts {
		n := buffer.UTF16Len(p)
		lines = append(lines, Line{Index: i, Start: offset, End: offset + n, Text: p})
		offset += n + 1
	}
	return lines
}

// MapLineRange returns one single-unit anchor per qualifying line in the
// 1-based inclusive range [startLine, endLine]. A line qualifies when it is in
// range and not degenerate. The running offset advances over every line, so
// an empty paragraph shifts the anchors after it but never gets its own.
func MapLineRange(lines []Line, startLine, endLine int) []Anchor {
	anchors := make([]Anchor, 0)
	offset := 0
	for i, l := range lines {
		if !l.Degenerate() && i >= startLine-1 && i < endLine {
			anchors = append(anchors, Anchor{Line: i, Offset: offset, Length: 1})
		}
		offset += l.Len() + 1
	}
	return anchors
}

// LineAt returns the line containing the UTF-16 offset, treating the
// delimiter after a line as part of it.
func LineAt(lines []Line, offset int) (Line, bool) {
	for _, l := range lines {
		if offset >= l.Start && offset <= l.End {
			return l, true
		}
	}
	return Line{}, false
}
