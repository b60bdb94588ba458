// Package span owns the ordered annotation records over one text snapshot.
package span

import (
	"fmt"

	"github.com/riverfjs/richtext-go/internal/buffer"
	"github.com/riverfjs/richtext-go/internal/margin"
	"github.com/riverfjs/richtext-go/internal/types"
)

// Registry keeps records in insertion order, which is also draw order.
// It is not safe for concurrent use; all calls belong on the rendering thread.
type Registry struct {
	text    *buffer.Text
	records []Record
	notify  func()
}

// New creates an empty registry over text. notify, if non-nil, is called
// once after every successful mutation.
func New(text *buffer.Text, notify func()) *Registry {
	if text == nil {
		text = buffer.NewText("")
	}
	return &Registry{text: text, notify: notify}
}

func (r *Registry) Text() *buffer.Text { return r.text }

func (r *Registry) Len() int { return len(r.records) }

// Add validates every record first and only then appends them all, so a
// rejected batch leaves the registry untouched. One notification is sent for
// the whole batch.
func (r *Registry) Add(recs ...Record) ([]Handle, error) {
	n := r.text.Len()
	for i, rec := range recs {
		if err := rec.Validate(n); err != nil {
			if len(recs) > 1 {
				return nil, fmt.Errorf("record %d of %d: %w", i+1, len(recs), err)
			}
			return nil, err
		}
	}
	handles := make([]Handle, 0, len(recs))
	for _, rec := range recs {
		rec.Handle = NewHandle()
		r.records = append(r.records, rec)
		handles = append(handles, rec.Handle)
	}
	r.changed()
	return handles, nil
}

// Remove deletes the record named by h and cancels its fade, if any.
func (r *Registry) Remove(h Handle) error {
	for i, rec := range r.records {
		if rec.Handle != h {
			continue
		}
		if rec.Fade != nil {
			rec.Fade.Cancel()
		}
		r.records = append(r.records[:i:i], r.records[i+1:]...)
		r.changed()
		return nil
	}
	return fmt.Errorf("remove %s: %w", h, types.ErrSpanNotFound)
}

// Clear removes every record.
func (r *Registry) Clear() {
	for _, rec := range r.records {
		if rec.Fade != nil {
			rec.Fade.Cancel()
		}
	}
	r.records = nil
	r.changed()
}

// Get returns the record named by h.
func (r *Registry) Get(h Handle) (Record, bool) {
	for _, rec := range r.records {
		if rec.Handle == h {
			return rec, true
		}
	}
	return Record{}, false
}

// Query returns records in insertion order, limited to kinds when given.
func (r *Registry) Query(kinds ...types.Kind) []Record {
	result := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		if matchKind(rec.Kind, kinds) {
			result = append(result, rec)
		}
	}
	return result
}

// QueryRange returns records overlapping [start, end) in insertion order.
func (r *Registry) QueryRange(start, end int) []Record {
	result := make([]Record, 0)
	for _, rec := range r.records {
		if rec.Overlaps(start, end) {
			result = append(result, rec)
		}
	}
	return result
}

// SpanStart implements margin.Spanned.
func (r *Registry) SpanStart(d margin.Decoration) int {
	return spanStart(r.records, d)
}

func (r *Registry) String() string { return r.text.String() }

// Snapshot copies the current records for a render pass.
func (r *Registry) Snapshot() Snapshot {
	recs := make([]Record, len(r.records))
	copy(recs, r.records)
	return Snapshot{Text: r.text, Records: recs}
}

func (r *Registry) changed() {
	if r.notify != nil {
		r.notify()
	}
}

func matchKind(k types.Kind, kinds []types.Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func spanStart(recs []Record, d margin.Decoration) int {
	if d == nil {
		return -1
	}
	for _, rec := range recs {
		if rec.Kind == types.KindDecoration && rec.Decoration == d {
			return rec.Start
		}
	}
	return -1
}
