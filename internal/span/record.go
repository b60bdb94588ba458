package span

import (
	"image"
	"image/color"

	"github.com/google/uuid"

	"github.com/riverfjs/richtext-go/internal/fade"
	"github.com/riverfjs/richtext-go/internal/margin"
	"github.com/riverfjs/richtext-go/internal/types"
)

// Handle identifies one record for the lifetime of its registry.
type Handle uuid.UUID

// NewHandle returns a fresh random handle.
func NewHandle() Handle { return Handle(uuid.New()) }

func (h Handle) String() string { return uuid.UUID(h).String() }

func (h Handle) IsZero() bool { return uuid.UUID(h) == uuid.Nil }

// ParseHandle parses the textual form returned by String.
func ParseHandle(s string) (Handle, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Handle{}, err
	}
	return Handle(id), nil
}

// Record is one annotation over [Start, End). Only the payload fields that
// belong to Kind are set. Records never change after they are added; editing
// a span is remove-then-add.
type Record struct {
	Handle Handle
	Kind   types.Kind
	Start  int
	End    int

	Style      types.StyleKind
	ColorKind  types.ColorKind
	Color      color.NRGBA
	URL        string
	Image      image.Image
	Decoration margin.Decoration
	Fade       *fade.Transition
	ScaleX     float64
}

// Overlaps reports whether the record covers any unit of [start, end).
func (r Record) Overlaps(start, end int) bool {
	return r.Start < end && r.End > start
}

// Validate checks the range against a buffer of n units and the payload
// against the kind. It never mutates r.
func (r Record) Validate(n int) error {
	if err := types.CheckRange(r.Start, r.End, n); err != nil {
		return err
	}
	switch r.Kind {
	case types.KindStyle:
		if !r.Style.Valid() {
			return &types.ConfigError{Param: "style kind"}
		}
	case types.KindColor:
		if !r.ColorKind.Valid() {
			return &types.ConfigError{Param: "color format kind"}
		}
	case types.KindLink:
		if r.URL == "" {
			return &types.ConfigError{Param: "url", Reason: "empty"}
		}
	case types.KindImage:
		if r.Image == nil {
			return &types.ConfigError{Param: "image", Reason: "nil"}
		}
	case types.KindDecoration:
		if r.Decoration == nil {
			return &types.ConfigError{Param: "decoration", Reason: "nil"}
		}
	case types.KindFade:
		if r.Fade == nil {
			return &types.ConfigError{Param: "fade", Reason: "nil"}
		}
	case types.KindScaleX:
		if r.ScaleX <= 0 {
			return &types.ConfigError{Param: "scale", Reason: "must be positive"}
		}
	default:
		return &types.ConfigError{Param: "span kind"}
	}
	return nil
}

// Apply folds the record into the attributes of a run it covers.
func (r Record) Apply(a *types.Attributes) {
	switch r.Kind {
	case types.KindStyle:
		r.Style.Apply(a)
	case types.KindColor:
		r.ColorKind.Apply(a, r.Color)
	case types.KindLink:
		a.Link = r.URL
		a.Underline = true
	case types.KindImage:
		a.Image = true
	case types.KindFade:
		a.Alpha = r.Fade.Alpha()
	case types.KindScaleX:
		a.ScaleX *= r.ScaleX
	}
}
