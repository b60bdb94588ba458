package term

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riverfjs/richtext-go/internal/paint"
	"github.com/riverfjs/richtext-go/internal/types"
)

type glyph struct {
	col   int
	text  string
	color color.NRGBA
}

// cellSurface maps decoration drawing onto terminal cells. Pixel x positions
// are divided by the cell width.
type cellSurface struct {
	cellWidth int
	bullet    string
	glyphs    []glyph
}

func (c *cellSurface) column(x float64) int {
	col := int(x) / c.cellWidth
	if col < 0 {
		return 0
	}
	return col
}

func (c *cellSurface) DrawText(s string, x, y float64, st *paint.State) {
	c.glyphs = append(c.glyphs, glyph{col: c.column(x), text: s, color: st.Color})
}

func (c *cellSurface) DrawCircle(cx, cy, r float64, st *paint.State) {
	c.glyphs = append(c.glyphs, glyph{col: c.column(cx - r), text: c.bullet, color: st.Color})
}

func (c *cellSurface) MeasureText(s string, st *paint.State) float64 {
	return float64(lipgloss.Width(s) * c.cellWidth)
}

// render lays the recorded glyphs into width cells. Glyphs painted in the
// host colour keep the terminal default.
func (c *cellSurface) render(r *lipgloss.Renderer, width int, host color.NRGBA) string {
	cells := make([]string, width)
	for i := range cells {
		cells[i] = " "
	}
	for _, g := range c.glyphs {
		text := g.text
		if g.color.A > 0 && g.color != host {
			text = r.NewStyle().Foreground(lipgloss.Color(types.HexColor(g.color))).Render(text)
		}
		col := g.col
		if col >= width {
			continue
		}
		cells[col] = text
		// wide glyphs and labels cover the cells after them
		for i := 1; i < lipgloss.Width(g.text) && col+i < width; i++ {
			cells[col+i] = ""
		}
	}
	c.glyphs = c.glyphs[:0]
	return strings.Join(cells, "")
}
