package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/riverfjs/richtext-go/internal/buffer"
	"github.com/riverfjs/richtext-go/internal/margin"
	"github.com/riverfjs/richtext-go/internal/segment"
	"github.com/riverfjs/richtext-go/internal/span"
	"github.com/riverfjs/richtext-go/internal/types"
)

var green = color.NRGBA{G: 0xc0, A: 0xff}

func bulletSnapshot(t *testing.T, text string) span.Snapshot {
	t.Helper()
	reg := span.New(buffer.NewText(text), nil)
	cfg := types.DefaultRenderConfig().Bullet
	cfg.Color = green

	var recs []span.Record
	for _, a := range segment.MapLineRange(segment.Split(text), 1, 1<<20) {
		recs = append(recs, span.Record{
			Kind:       types.KindDecoration,
			Start:      a.Offset,
			End:        a.Offset + a.Length,
			Decoration: margin.NewBullet(cfg),
		})
	}
	if _, err := reg.Add(recs...); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	return reg.Snapshot()
}

func newRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := New(nil, opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func isGreen(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return g > 0x8000 && r < 0x4000 && b < 0x4000
}

func isBackground(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0xf000 && g > 0xf000 && b > 0xf000
}

func TestSplitWords(t *testing.T) {
	words := splitWords("ab  cd e", 10)
	want := []word{
		{start: 10, end: 14, text: "ab  "},
		{start: 14, end: 17, text: "cd "},
		{start: 17, end: 18, text: "e"},
	}
	if len(words) != len(want) {
		t.Fatalf("splitWords() = %+v, want %+v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word %d = %+v, want %+v", i, words[i], want[i])
		}
	}

	surrogate := splitWords("😀 x", 0)
	if surrogate[1].start != 3 {
		t.Errorf("surrogate pair should count as 2 units, got start %d", surrogate[1].start)
	}
}

func TestLayout_WrapsWithinParagraph(t *testing.T) {
	r := newRenderer(t, Options{Width: 260})
	text := "alpha beta gamma delta epsilon zeta eta theta iota kappa\nshort"
	lines := r.Layout(bulletSnapshot(t, text))

	if len(lines) < 3 {
		t.Fatalf("expected the first paragraph to wrap, got %d lines", len(lines))
	}
	if !lines[0].First || lines[0].Start != 0 {
		t.Errorf("first line = %+v", lines[0])
	}
	for i := 1; i < len(lines)-1; i++ {
		if lines[i].First {
			t.Errorf("continuation line %d marked First", i)
		}
		if lines[i].Start != lines[i-1].End {
			t.Errorf("line %d starts at %d, previous ended at %d", i, lines[i].Start, lines[i-1].End)
		}
	}
	last := lines[len(lines)-1]
	if !last.First || last.Start != 57 || last.End != 62 {
		t.Errorf("second paragraph line = %+v", last)
	}
}

func TestRender_BulletOnlyOnFirstVisualLine(t *testing.T) {
	r := newRenderer(t, Options{Width: 260})
	snap := bulletSnapshot(t, "alpha beta gamma delta epsilon zeta eta theta iota kappa")
	lines := r.Layout(snap)
	img := r.Render(snap)

	lh := r.lineHeight()
	cx := r.opts.Padding + r.cfg.Bullet.Offset
	firstY := int(lines[0].Top + lh/2)
	secondY := int(lines[1].Top + lh/2)

	if c := img.At(cx, firstY); !isGreen(c) {
		t.Errorf("pixel at first bullet = %v, want green", c)
	}
	if c := img.At(cx, secondY); !isBackground(c) {
		t.Errorf("pixel at continuation margin = %v, want background", c)
	}
}

func TestRender_SkipsEmptyParagraph(t *testing.T) {
	r := newRenderer(t, Options{})
	snap := bulletSnapshot(t, "A\n\nB")
	lines := r.Layout(snap)
	if len(lines) != 3 {
		t.Fatalf("Layout() = %d lines, want 3", len(lines))
	}
	img := r.Render(snap)

	lh := r.lineHeight()
	cx := r.opts.Padding + r.cfg.Bullet.Offset
	for i, want := range []bool{true, false, true} {
		y := int(lines[i].Top + lh/2)
		if got := isGreen(img.At(cx, y)); got != want {
			t.Errorf("line %d bullet drawn = %v, want %v", i, got, want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	r := newRenderer(t, Options{Width: 320})
	var buf bytes.Buffer
	if err := r.RenderPNG(&buf, bulletSnapshot(t, "one\ntwo")); err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 320 {
		t.Errorf("width = %d, want 320", img.Bounds().Dx())
	}
}

func TestRender_Image(t *testing.T) {
	pic := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pic.Set(x, y, green)
		}
	}
	reg := span.New(buffer.NewText("x"), nil)
	if _, err := reg.Add(span.Record{Kind: types.KindImage, Start: 0, End: 1, Image: pic}); err != nil {
		t.Fatal(err)
	}

	r := newRenderer(t, Options{})
	img := r.Render(reg.Snapshot())
	lh := r.lineHeight()
	mid := r.opts.Padding + int(lh/2)
	if c := img.At(r.opts.Padding+int(lh/2), mid); !isGreen(c) {
		t.Errorf("pixel inside image = %v, want green", c)
	}
}

func TestFonts_FaceCache(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatal(err)
	}
	a := f.Face(true, false, 12)
	b := f.Face(true, false, 12)
	if a != b {
		t.Error("Face() should reuse cached faces")
	}
	if Measure(f.Face(false, false, 20), "wide text") <= Measure(f.Face(false, false, 10), "wide text") {
		t.Error("larger faces should measure wider")
	}
}
