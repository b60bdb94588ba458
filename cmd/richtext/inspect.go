package main

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/riverfjs/richtext-go"
	"github.com/riverfjs/richtext-go/internal/margin"
	"github.com/riverfjs/richtext-go/internal/types"
)

// InspectCmd dumps the annotated text as JSON.
type InspectCmd struct {
	SourceFlags `embed:""`

	Compact bool `help:"Print compact JSON"`
}

// Inspection is the JSON shape printed by inspect.
type Inspection struct {
	Text        string     `json:"text"`
	Length      int        `json:"length"`
	Fingerprint string     `json:"fingerprint"`
	Spans       []SpanInfo `json:"spans"`
}

// SpanInfo describes one span.
type SpanInfo struct {
	Handle string `json:"handle"`
	Kind   string `json:"kind"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Detail string `json:"detail,omitempty"`
}

func (c *InspectCmd) Run(ctx *kong.Context) error {
	v, err := c.Load()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(ctx.Stdout)
	if !c.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(Inspect(v))
}

// Inspect summarises v.
func Inspect(v *richtext.View) Inspection {
	out := Inspection{
		Text:        v.Text(),
		Length:      v.Len(),
		Fingerprint: v.Fingerprint(),
		Spans:       make([]SpanInfo, 0, v.SpanCount()),
	}
	for _, s := range v.QuerySpans() {
		out.Spans = append(out.Spans, SpanInfo{
			Handle: s.Handle.String(),
			Kind:   s.Kind.String(),
			Start:  s.Start,
			End:    s.End,
			Detail: detail(s),
		})
	}
	return out
}

func detail(s richtext.Span) string {
	switch s.Kind {
	case richtext.KindStyle:
		return s.Style.String()
	case richtext.KindColor:
		name := "fg"
		if s.ColorKind == richtext.ColorHighlight {
			name = "bg"
		}
		return name + ":" + types.HexColor(s.Color)
	case richtext.KindLink:
		return s.URL
	case richtext.KindImage:
		b := s.Image.Bounds()
		return fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
	case richtext.KindDecoration:
		switch d := s.Decoration.(type) {
		case *margin.Number:
			return "number " + d.Label()
		case *margin.Bullet:
			return "bullet"
		}
	case richtext.KindFade:
		return fmt.Sprintf("%s alpha=%d", s.Fade.Duration(), s.Fade.Alpha())
	case richtext.KindScaleX:
		return fmt.Sprintf("x%g", s.ScaleX)
	}
	return ""
}

