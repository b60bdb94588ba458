// Package term is a reference host that prints a span snapshot to a terminal
// with lipgloss. Each paragraph is one visual line; margin pixels are mapped
// onto fixed-width cells.
package term

import (
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riverfjs/richtext-go/internal/margin"
	"github.com/riverfjs/richtext-go/internal/paint"
	"github.com/riverfjs/richtext-go/internal/segment"
	"github.com/riverfjs/richtext-go/internal/span"
	"github.com/riverfjs/richtext-go/internal/types"
)

// DefaultCellWidth is how many margin pixels one terminal cell stands for.
const DefaultCellWidth = 25

// Options 终端渲染配置
type Options struct {
	CellWidth int
	// Output decides the colour profile; nil means stdout.
	Output io.Writer
}

// Renderer prints snapshots as styled terminal text.
type Renderer struct {
	cfg   *types.RenderConfig
	cells int
	lg    *lipgloss.Renderer
	host  color.NRGBA
}

// New creates a renderer; a nil cfg uses the default render config.
func New(cfg *types.RenderConfig, opts Options) *Renderer {
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	lg := lipgloss.DefaultRenderer()
	if opts.Output != nil {
		lg = lipgloss.NewRenderer(opts.Output)
	}
	return &Renderer{cfg: cfg, cells: opts.CellWidth, lg: lg, host: color.NRGBA{A: 0xff}}
}

// Render returns the snapshot as lines joined by "\n".
func (r *Renderer) Render(snap span.Snapshot) string {
	surface := &cellSurface{cellWidth: r.cells, bullet: r.cfg.Symbol.Bullet}
	st := &paint.State{Style: paint.Fill, Color: r.host, TextSize: r.cfg.TextSize}

	var out []string
	for _, para := range segment.Split(snap.String()) {
		x := 0
		for _, d := range snap.Decorations(para.Start, para.End) {
			d.Paint(surface, st, snap, margin.Line{
				X:        x,
				Dir:      1,
				Top:      0,
				Baseline: 1,
				Bottom:   2,
				Start:    para.Start,
				End:      para.End,
				First:    true,
			})
			x += d.MarginWidth(true)
		}

		var b strings.Builder
		if x > 0 {
			b.WriteString(surface.render(r.lg, (x+r.cells-1)/r.cells, r.host))
		}
		b.WriteString(r.runs(snap, para))
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) runs(snap span.Snapshot, para segment.Line) string {
	if para.Len() == 0 || snap.Text == nil {
		return ""
	}
	cuts := append([]int{para.Start}, snap.Boundaries(para.Start, para.End)...)
	cuts = append(cuts, para.End)

	var b strings.Builder
	for i := 0; i+1 < len(cuts); i++ {
		a, c := cuts[i], cuts[i+1]
		attrs := snap.Attributes(a, c)
		text := snap.Text.Slice(a, c)
		if attrs.Image {
			if rec, ok := snap.ImageAt(a); ok && a == max(rec.Start, para.Start) {
				b.WriteString(r.cfg.Symbol.Image)
			}
			continue
		}
		if attrs.Alpha == 0 {
			b.WriteString(strings.Repeat(" ", lipgloss.Width(text)))
			continue
		}
		b.WriteString(r.style(attrs).Render(text))
	}
	return b.String()
}

func (r *Renderer) style(a types.Attributes) lipgloss.Style {
	s := r.lg.NewStyle().
		Bold(a.Bold).
		Italic(a.Italic).
		Underline(a.Underline).
		Strikethrough(a.Strikethrough).
		Faint(a.Alpha < 255)
	switch {
	case a.Foreground != nil:
		s = s.Foreground(lipgloss.Color(types.HexColor(a.Foreground)))
	case a.Link != "":
		s = s.Foreground(lipgloss.Color(types.HexColor(r.cfg.LinkColor)))
	}
	if a.Background != nil {
		s = s.Background(lipgloss.Color(types.HexColor(a.Background)))
	}
	return s
}

