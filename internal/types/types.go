package types

import (
	"fmt"
	"image/color"

	"github.com/riverfjs/richtext-go/internal/margin"
)

// Symbol 定义渲染时使用的显示符号
type Symbol struct {
	Bullet string
	Image  string
	Link   string
}

// DefaultSymbol 返回默认符号配置
func DefaultSymbol() *Symbol {
	return &Symbol{
		Bullet: "•",
		Image:  "🖼",
		Link:   "🔗",
	}
}

// RenderConfig 渲染配置
type RenderConfig struct {
	Symbol *Symbol

	// TextSize is the host text size in pixels.
	TextSize float64
	Number   margin.NumberConfig
	Bullet   margin.BulletConfig

	LinkColor color.NRGBA
	// CodeHighlight is the background used for code spans loaded from markdown.
	CodeHighlight color.NRGBA
	QuoteColor    color.NRGBA
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Symbol:   DefaultSymbol(),
		TextSize: 20,
		Number: margin.NumberConfig{
			GapWidth: 100,
		},
		Bullet: margin.BulletConfig{
			GapWidth: 100,
			Radius:   10,
			Offset:   10,
			Color:    color.NRGBA{A: 0xff},
		},
		LinkColor:     color.NRGBA{R: 0x1a, G: 0x73, B: 0xe8, A: 0xff},
		CodeHighlight: color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		QuoteColor:    color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
	}
}

// Clone returns a deep copy so callers can tweak a shared default.
func (c *RenderConfig) Clone() *RenderConfig {
	cp := *c
	if c.Symbol != nil {
		sym := *c.Symbol
		cp.Symbol = &sym
	}
	return &cp
}

// HexColor formats c as #rrggbb, dropping alpha.
func HexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
