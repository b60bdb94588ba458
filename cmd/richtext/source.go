package main

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riverfjs/richtext-go"
	"github.com/riverfjs/richtext-go/internal/imageload"
)

// SourceFlags are shared by every command that builds a View.
type SourceFlags struct {
	Input    string        `arg:"" default:"-" help:"Input file, or - for stdin"`
	Markdown bool          `short:"m" help:"Treat the input as markdown"`
	Spans    []string      `name:"span" short:"s" sep:"none" help:"START:END:KIND[:ARG] e.g. 0:5:bold, 0:5:fg:#ff0000, 0:4:link:https://go.dev, 0:2:fade:800ms"`
	Numbers  []string      `name:"number" sep:"none" help:"Number lines FIRST:LAST (1-based, inclusive)"`
	Bullets  []string      `name:"bullet" sep:"none" help:"Bullet lines FIRST:LAST (1-based, inclusive)"`
	TextSize float64       `name:"text-size" default:"20" help:"Text size in pixels"`
	Timeout  time.Duration `default:"15s" help:"Timeout for fetching markdown images"`

	stdin io.Reader `kong:"-"`
	piped *string   `kong:"-"`
}

// read returns the input text. Stdin can only be consumed once, so its text
// is kept for later loads.
func (f *SourceFlags) read() (string, error) {
	if f.Input == "-" {
		if f.piped != nil {
			return *f.piped, nil
		}
		in := f.stdin
		if in == nil {
			in = os.Stdin
		}
		b, err := io.ReadAll(in)
		if err != nil {
			return "", err
		}
		text := string(b)
		f.piped = &text
		return text, nil
	}
	b, err := os.ReadFile(f.Input)
	return string(b), err
}

// Load builds a View from the input and every annotation flag.
func (f *SourceFlags) Load(opts ...richtext.Option) (*richtext.View, error) {
	text, err := f.read()
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	cfg := richtext.DefaultConfig().Clone()
	if f.TextSize > 0 {
		cfg.TextSize = f.TextSize
	}
	opts = append([]richtext.Option{richtext.WithConfig(cfg)}, opts...)

	var v *richtext.View
	if f.Markdown {
		doc := richtext.ParseMarkdown(text, cfg)
		v = richtext.New(opts...)
		if err := v.Batch(func() error {
			v.SetText(doc.Text)
			return v.ApplyDocument(doc)
		}); err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), f.Timeout)
		defer cancel()
		v.ResolveImages(ctx, doc, nil)
	} else {
		v = richtext.New(opts...)
		v.SetText(strings.TrimSuffix(text, "\n"))
	}

	err = v.Batch(func() error {
		for _, s := range f.Spans {
			if err := applySpan(v, s); err != nil {
				return fmt.Errorf("--span %q: %w", s, err)
			}
		}
		for _, r := range f.Numbers {
			if err := applyLines(v, r, richtext.DecorationNumber); err != nil {
				return fmt.Errorf("--number %q: %w", r, err)
			}
		}
		for _, r := range f.Bullets {
			if err := applyLines(v, r, richtext.DecorationBullet); err != nil {
				return fmt.Errorf("--bullet %q: %w", r, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// SpanArg is a parsed --span value.
type SpanArg struct {
	Start int
	End   int
	Kind  string
	Arg   string
}

// ParseSpanArg parses START:END:KIND[:ARG]. ARG keeps any further colons so
// URLs survive.
func ParseSpanArg(s string) (SpanArg, error) {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) < 3 {
		return SpanArg{}, fmt.Errorf("want START:END:KIND[:ARG]")
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return SpanArg{}, fmt.Errorf("start: %w", err)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return SpanArg{}, fmt.Errorf("end: %w", err)
	}
	a := SpanArg{Start: start, End: end, Kind: strings.ToLower(parts[2])}
	if len(parts) == 4 {
		a.Arg = parts[3]
	}
	return a, nil
}

func applySpan(v *richtext.View, s string) error {
	a, err := ParseSpanArg(s)
	if err != nil {
		return err
	}

	switch a.Kind {
	case "fg", "bg":
		c, err := ParseHexColor(a.Arg)
		if err != nil {
			return err
		}
		kind := richtext.ColorForeground
		if a.Kind == "bg" {
			kind = richtext.ColorHighlight
		}
		_, err = v.AddColorSpan(a.Start, a.End, kind, c)
		return err
	case "link":
		_, err = v.AddHyperlinkSpan(a.Start, a.End, a.Arg)
		return err
	case "image":
		img, err := imageload.Load(context.Background(), a.Arg, nil)
		if err != nil {
			return err
		}
		_, err = v.AddImageSpan(a.Start, a.End, img)
		return err
	case "scale":
		factor, err := strconv.ParseFloat(a.Arg, 64)
		if err != nil {
			return fmt.Errorf("scale: %w", err)
		}
		_, err = v.AddScaleXSpan(a.Start, a.End, factor)
		return err
	case "fade":
		d := 500 * time.Millisecond
		if a.Arg != "" {
			if d, err = time.ParseDuration(a.Arg); err != nil {
				return fmt.Errorf("fade: %w", err)
			}
		}
		_, err = v.AddFade(a.Start, a.End, d)
		return err
	}

	kind, ok := richtext.ParseStyleKind(a.Kind)
	if !ok {
		return fmt.Errorf("unknown span kind %q", a.Kind)
	}
	_, err = v.AddStyleSpan(a.Start, a.End, kind)
	return err
}

// ParseLineRange parses FIRST:LAST, or a single line number.
func ParseLineRange(s string) (int, int, error) {
	first, last, found := strings.Cut(s, ":")
	a, err := strconv.Atoi(first)
	if err != nil {
		return 0, 0, fmt.Errorf("first line: %w", err)
	}
	if !found {
		return a, a, nil
	}
	b, err := strconv.Atoi(last)
	if err != nil {
		return 0, 0, fmt.Errorf("last line: %w", err)
	}
	return a, b, nil
}

func applyLines(v *richtext.View, s string, kind richtext.DecorationKind) error {
	first, last, err := ParseLineRange(s)
	if err != nil {
		return err
	}
	_, err = v.AddLineDecorations(first, last, kind)
	return err
}

// ParseHexColor parses #rgb or #rrggbb.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}
