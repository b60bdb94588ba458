// Package raster is a reference host that lays out a span snapshot and draws
// it onto an RGBA image with gg.
//
// Layout is greedy word wrapping per paragraph. Every visual line asks each
// decoration anchored in its paragraph for a margin, then hands the same
// decorations the line geometry so that only the first visual line of the
// paragraph gets its bullet or number.
package raster

import (
	"image"
	"image/color"
	"io"
	"math"
	"unicode/utf8"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/riverfjs/richtext-go/internal/buffer"
	"github.com/riverfjs/richtext-go/internal/fade"
	"github.com/riverfjs/richtext-go/internal/margin"
	"github.com/riverfjs/richtext-go/internal/paint"
	"github.com/riverfjs/richtext-go/internal/segment"
	"github.com/riverfjs/richtext-go/internal/span"
	"github.com/riverfjs/richtext-go/internal/types"
)

// Options controls the canvas.
type Options struct {
	Width       int
	Padding     int
	LineSpacing float64
	Background  color.Color
	Foreground  color.NRGBA
}

// DefaultOptions 默认画布配置
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Padding:     16,
		LineSpacing: 1.4,
		Background:  color.White,
		Foreground:  color.NRGBA{A: 255},
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.LineSpacing <= 0 {
		o.LineSpacing = d.LineSpacing
	}
	if o.Background == nil {
		o.Background = d.Background
	}
	if o.Foreground.A == 0 {
		o.Foreground = d.Foreground
	}
	return o
}

// Renderer draws snapshots.
type Renderer struct {
	cfg   *types.RenderConfig
	opts  Options
	fonts *Fonts
}

// New creates a renderer; a nil cfg uses the default render config.
func New(cfg *types.RenderConfig, opts Options) (*Renderer, error) {
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg, opts: opts.normalized(), fonts: fonts}, nil
}

// VisualLine is one wrapped line of a paragraph.
type VisualLine struct {
	Start int
	End   int
	First bool
	Top   float64

	decos []margin.Decoration
}

func (r *Renderer) lineHeight() float64 {
	return r.cfg.TextSize * r.opts.LineSpacing
}

// Layout wraps snap into visual lines.
func (r *Renderer) Layout(snap span.Snapshot) []VisualLine {
	face := r.fonts.Face(false, false, r.cfg.TextSize)
	lh := r.lineHeight()
	y := float64(r.opts.Padding)

	var out []VisualLine
	for _, para := range segment.Split(snap.String()) {
		decos := snap.Decorations(para.Start, para.End)
		first := true
		for _, rng := range r.wrap(para, decos, func(s string) float64 { return Measure(face, s) }) {
			out = append(out, VisualLine{
				Start: rng[0],
				End:   rng[1],
				First: first,
				Top:   y,
				decos: decos,
			})
			first = false
			y += lh
		}
	}
	return out
}

type word struct {
	start, end int
	text       string
}

// splitWords cuts a paragraph into words that keep their trailing spaces.
func splitWords(text string, base int) []word {
	var words []word
	byteStart, u16, wordStart := 0, base, base
	prevSpace := false
	for i, ch := range text {
		if prevSpace && ch != ' ' {
			words = append(words, word{start: wordStart, end: u16, text: text[byteStart:i]})
			byteStart, wordStart = i, u16
		}
		prevSpace = ch == ' '
		u16 += utf16Units(ch)
	}
	if byteStart < len(text) {
		words = append(words, word{start: wordStart, end: u16, text: text[byteStart:]})
	}
	return words
}

func utf16Units(ch rune) int {
	if ch >= 0x10000 && utf8.ValidRune(ch) {
		return 2
	}
	return 1
}

func (r *Renderer) wrap(para segment.Line, decos []margin.Decoration, measure func(string) float64) [][2]int {
	if para.Len() == 0 {
		return [][2]int{{para.Start, para.End}}
	}

	var lines [][2]int
	lineStart := para.Start
	width := 0.0
	avail := r.available(decos, true)
	for _, w := range splitWords(para.Text, para.Start) {
		trimmed := trimSpaces(w.text)
		if width > 0 && width+measure(trimmed) > avail {
			lines = append(lines, [2]int{lineStart, w.start})
			lineStart, width = w.start, 0
			avail = r.available(decos, false)
		}
		width += measure(w.text)
	}
	return append(lines, [2]int{lineStart, para.End})
}

func trimSpaces(s string) string {
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

func (r *Renderer) available(decos []margin.Decoration, first bool) float64 {
	w := float64(r.opts.Width - 2*r.opts.Padding)
	for _, d := range decos {
		w -= float64(d.MarginWidth(first))
	}
	return w
}

// Render lays out and draws snap.
func (r *Renderer) Render(snap span.Snapshot) image.Image {
	lines := r.Layout(snap)
	lh := r.lineHeight()
	height := 2*r.opts.Padding + int(math.Ceil(lh*float64(max(len(lines), 1))))

	dc := gg.NewContext(r.opts.Width, height)
	dc.SetColor(r.opts.Background)
	dc.Clear()

	surface := NewSurface(dc, r.fonts)
	st := &paint.State{Style: paint.Fill, Color: r.opts.Foreground, TextSize: r.cfg.TextSize}

	for _, vl := range lines {
		top := vl.Top
		bottom := top + lh
		baseline := r.baseline(top)

		x := r.opts.Padding
		for _, d := range vl.decos {
			d.Paint(surface, st, snap, margin.Line{
				X:        x,
				Dir:      1,
				Top:      int(math.Round(top)),
				Baseline: int(math.Round(baseline)),
				Bottom:   int(math.Round(bottom)),
				Start:    vl.Start,
				End:      vl.End,
				First:    vl.First,
			})
			x += d.MarginWidth(vl.First)
		}
		r.drawRuns(dc, snap, vl, float64(x), baseline, st)
	}
	return dc.Image()
}

// RenderPNG 渲染并写出 PNG
func (r *Renderer) RenderPNG(w io.Writer, snap span.Snapshot) error {
	dc := gg.NewContextForImage(r.Render(snap))
	return dc.EncodePNG(w)
}

func (r *Renderer) baseline(top float64) float64 {
	m := r.fonts.Face(false, false, r.cfg.TextSize).Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	return top + (r.lineHeight()-(ascent+descent))/2 + ascent
}

func (r *Renderer) drawRuns(dc *gg.Context, snap span.Snapshot, vl VisualLine, x, baseline float64, st *paint.State) {
	if vl.End <= vl.Start || snap.Text == nil {
		return
	}
	cuts := append([]int{vl.Start}, snap.Boundaries(vl.Start, vl.End)...)
	cuts = append(cuts, vl.End)

	for i := 0; i+1 < len(cuts); i++ {
		a, b := cuts[i], cuts[i+1]
		attrs := snap.Attributes(a, b)
		if attrs.Image {
			x += r.drawImage(dc, snap, a, vl, x)
			continue
		}
		x += r.drawText(dc, snap.Text, a, b, attrs, x, baseline, vl.Top, st)
	}
}

func (r *Renderer) drawImage(dc *gg.Context, snap span.Snapshot, at int, vl VisualLine, x float64) float64 {
	rec, ok := snap.ImageAt(at)
	if !ok || rec.Image == nil || at != max(rec.Start, vl.Start) {
		return 0
	}
	src := rec.Image.Bounds()
	if src.Dx() == 0 || src.Dy() == 0 {
		return 0
	}
	h := int(math.Round(r.lineHeight()))
	w := int(math.Round(float64(h) * float64(src.Dx()) / float64(src.Dy())))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), rec.Image, src, xdraw.Over, nil)
	dc.DrawImage(dst, int(math.Round(x)), int(math.Round(vl.Top)))
	return float64(w)
}

func (r *Renderer) drawText(dc *gg.Context, text *buffer.Text, a, b int, attrs types.Attributes, x, baseline, top float64, st *paint.State) float64 {
	s := text.Slice(a, b)
	size := st.TextSize
	dy := 0.0
	switch {
	case attrs.Superscript:
		size, dy = size*0.7, -st.TextSize*0.35
	case attrs.Subscript:
		size, dy = size*0.7, st.TextSize*0.2
	}
	face := r.fonts.Face(attrs.Bold, attrs.Italic, size)
	w := Measure(face, s) * attrs.ScaleX

	if attrs.Background != nil {
		dc.SetColor(attrs.Background)
		dc.DrawRectangle(x, top, w, r.lineHeight())
		dc.Fill()
	}

	fg := st.Color
	switch {
	case attrs.Foreground != nil:
		fg = color.NRGBAModel.Convert(attrs.Foreground).(color.NRGBA)
	case attrs.Link != "":
		fg = r.cfg.LinkColor
	}
	fg.A = uint8(int(fg.A) * attrs.Alpha / fade.MaxAlpha)

	dc.Push()
	dc.SetFontFace(face)
	dc.SetColor(fg)
	if attrs.ScaleX != 1 {
		dc.ScaleAbout(attrs.ScaleX, 1, x, baseline)
	}
	dc.DrawString(s, x, baseline+dy)
	dc.Pop()

	if attrs.Underline || attrs.Strikethrough {
		dc.Push()
		dc.SetColor(fg)
		dc.SetLineWidth(math.Max(1, size/16))
		if attrs.Underline {
			y := baseline + dy + 2
			dc.DrawLine(x, y, x+w, y)
			dc.Stroke()
		}
		if attrs.Strikethrough {
			y := baseline + dy - size*0.3
			dc.DrawLine(x, y, x+w, y)
			dc.Stroke()
		}
		dc.Pop()
	}
	return w
}
