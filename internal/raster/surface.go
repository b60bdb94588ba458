package raster

import (
	"github.com/fogleman/gg"

	"github.com/riverfjs/richtext-go/internal/paint"
)

// Surface adapts a gg context to paint.Surface.
type Surface struct {
	dc    *gg.Context
	fonts *Fonts
}

// NewSurface wraps dc.
func NewSurface(dc *gg.Context, fonts *Fonts) *Surface {
	return &Surface{dc: dc, fonts: fonts}
}

// DrawText draws s in the regular face; gg has no glyph outline stroking so
// every style fills.
func (s *Surface) DrawText(text string, x, y float64, st *paint.State) {
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.SetFontFace(s.fonts.Face(false, false, st.TextSize))
	s.dc.SetColor(st.Color)
	s.dc.DrawString(text, x, y)
}

func (s *Surface) DrawCircle(cx, cy, r float64, st *paint.State) {
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.SetColor(st.Color)
	s.dc.DrawCircle(cx, cy, r)
	switch st.Style {
	case paint.Stroke:
		s.dc.SetLineWidth(1)
		s.dc.Stroke()
	case paint.FillAndStroke:
		s.dc.FillPreserve()
		s.dc.SetLineWidth(1)
		s.dc.Stroke()
	default:
		s.dc.Fill()
	}
}

func (s *Surface) MeasureText(text string, st *paint.State) float64 {
	return Measure(s.fonts.Face(false, false, st.TextSize), text)
}
