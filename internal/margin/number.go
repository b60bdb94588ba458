package margin

import (
	"strconv"

	"github.com/riverfjs/richtext-go/internal/paint"
)

// NumberConfig configures an ordinal decoration.
type NumberConfig struct {
	GapWidth int
	// TextSize of the label; zero keeps the host's current size.
	TextSize   float64
	Suppressed bool
}

// Number draws "N." in the margin of its paragraph.
type Number struct {
	ordinal  int
	cfg      NumberConfig
	measured float64
}

// NewNumber returns the decoration for the given 1-based ordinal.
func NewNumber(ordinal int, cfg NumberConfig) *Number {
	return &Number{ordinal: ordinal, cfg: cfg}
}

func (n *Number) Ordinal() int { return n.ordinal }

func (n *Number) Config() NumberConfig { return n.cfg }

// Label is the text drawn in the margin.
func (n *Number) Label() string {
	return strconv.Itoa(n.ordinal) + "."
}

// MeasuredWidth is the label width from the last paint call. It is a side
// value only; the margin is always GapWidth.
func (n *Number) MeasuredWidth() float64 { return n.measured }

func (n *Number) MarginWidth(first bool) int {
	return n.cfg.GapWidth
}

func (n *Number) Paint(s paint.Surface, st *paint.State, text Spanned, line Line) {
	if n.cfg.Suppressed || s == nil || !anchoredAt(n, text, line) {
		return
	}
	paint.Borrow(st, func(st *paint.State) {
		st.Style = paint.Fill
		if n.cfg.TextSize > 0 {
			st.TextSize = n.cfg.TextSize
		}
		label := n.Label()
		n.measured = s.MeasureText(label, st)
		s.DrawText(label, float64(line.X), float64(line.Baseline), st)
	})
}
