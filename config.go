package richtext

import (
	"image/color"
	"sync"

	"github.com/riverfjs/richtext-go/internal/margin"
	"github.com/riverfjs/richtext-go/internal/span"
	"github.com/riverfjs/richtext-go/internal/types"
)

// 导出类型别名
type (
	Symbol       = types.Symbol
	RenderConfig = types.RenderConfig
	NumberConfig = margin.NumberConfig
	BulletConfig = margin.BulletConfig
	Attributes   = types.Attributes
	Color        = color.NRGBA

	Kind      = types.Kind
	StyleKind = types.StyleKind
	ColorKind = types.ColorKind

	Handle   = span.Handle
	Span     = span.Record
	Snapshot = span.Snapshot
)

const (
	KindStyle      = types.KindStyle
	KindColor      = types.KindColor
	KindLink       = types.KindLink
	KindImage      = types.KindImage
	KindDecoration = types.KindDecoration
	KindFade       = types.KindFade
	KindScaleX     = types.KindScaleX
)

const (
	StyleNormal        = types.StyleNormal
	StyleBold          = types.StyleBold
	StyleItalic        = types.StyleItalic
	StyleUnderline     = types.StyleUnderline
	StyleStrikethrough = types.StyleStrikethrough
	StyleSuperscript   = types.StyleSuperscript
	StyleSubscript     = types.StyleSubscript
)

const (
	ColorForeground = types.ColorForeground
	ColorHighlight  = types.ColorHighlight
)

// DecorationKind selects the leading-margin decoration for AddLineDecorations.
type DecorationKind int

const (
	DecorationNumber DecorationKind = iota + 1
	DecorationBullet
)

func (k DecorationKind) String() string {
	switch k {
	case DecorationNumber:
		return "number"
	case DecorationBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// ParseStyleKind maps a style name such as "bold" to its kind.
func ParseStyleKind(name string) (StyleKind, bool) { return types.ParseStyleKind(name) }

// ParseHandle parses a handle printed with Handle.String.
func ParseHandle(s string) (Handle, error) { return span.ParseHandle(s) }

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
// Use Clone before modifying it.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
