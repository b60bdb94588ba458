package span

import (
	"sort"

	"github.com/riverfjs/richtext-go/internal/buffer"
	"github.com/riverfjs/richtext-go/internal/margin"
	"github.com/riverfjs/richtext-go/internal/types"
)

// Snapshot is a read-only view of a registry handed to renderers.
type Snapshot struct {
	Text    *buffer.Text
	Records []Record
}

func (s Snapshot) String() string {
	if s.Text == nil {
		return ""
	}
	return s.Text.String()
}

// SpanStart implements margin.Spanned.
func (s Snapshot) SpanStart(d margin.Decoration) int {
	return spanStart(s.Records, d)
}

// Decorations returns the decorations anchored in [start, end] in draw order.
// The closed upper bound includes the delimiter that ends a paragraph.
func (s Snapshot) Decorations(start, end int) []margin.Decoration {
	var result []margin.Decoration
	for _, rec := range s.Records {
		if rec.Kind == types.KindDecoration && rec.Start >= start && rec.Start <= end {
			result = append(result, rec.Decoration)
		}
	}
	return result
}

// Attributes folds every record overlapping [start, end) over the base
// attributes, in insertion order.
func (s Snapshot) Attributes(start, end int) types.Attributes {
	a := types.BaseAttributes()
	for _, rec := range s.Records {
		if rec.Overlaps(start, end) {
			rec.Apply(&a)
		}
	}
	return a
}

// Boundaries returns the sorted, de-duplicated offsets inside (start, end)
// where the set of covering records changes.
func (s Snapshot) Boundaries(start, end int) []int {
	seen := map[int]bool{}
	var cuts []int
	add := func(off int) {
		if off > start && off < end && !seen[off] {
			seen[off] = true
			cuts = append(cuts, off)
		}
	}
	for _, rec := range s.Records {
		if rec.Kind == types.KindDecoration {
			continue
		}
		add(rec.Start)
		add(rec.End)
	}
	sort.Ints(cuts)
	return cuts
}

// ImageAt returns the image record covering offset, if any; the last one
// added wins.
func (s Snapshot) ImageAt(offset int) (Record, bool) {
	var found Record
	ok := false
	for _, rec := range s.Records {
		if rec.Kind == types.KindImage && rec.Overlaps(offset, offset+1) {
			found, ok = rec, true
		}
	}
	return found, ok
}
