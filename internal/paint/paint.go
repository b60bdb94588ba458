// Package paint defines the drawing state that a host renderer lends to
// leading-margin decorations, and the surface they draw on.
package paint

import "image/color"

// Style is the fill mode used for shapes and glyphs.
type Style int

const (
	Fill Style = iota
	Stroke
	FillAndStroke
)

func (s Style) String() string {
	switch s {
	case Fill:
		return "fill"
	case Stroke:
		return "stroke"
	case FillAndStroke:
		return "fill_and_stroke"
	default:
		return "unknown"
	}
}

// State is the mutable paint object shared by every draw call of one render
// pass. Decorations borrow it and must hand it back unchanged.
type State struct {
	Style    Style
	Color    color.NRGBA
	TextSize float64
}

// Surface is the drawing target supplied by the host.
type Surface interface {
	// DrawText draws s with its baseline at y.
	DrawText(s string, x, y float64, st *State)
	DrawCircle(cx, cy, r float64, st *State)
	// MeasureText returns the advance width of s at st.TextSize.
	MeasureText(s string, st *State) float64
}

// Borrow runs fn with st and restores every field of st afterwards, including
// when fn returns early or panics.
func Borrow(st *State, fn func(st *State)) {
	if st == nil {
		return
	}
	saved := *st
	defer func() { *st = saved }()
	fn(st)
}
