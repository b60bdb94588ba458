package raster

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type variant int

const (
	regular variant = iota
	bold
	italic
	boldItalic
)

func variantOf(isBold, isItalic bool) variant {
	switch {
	case isBold && isItalic:
		return boldItalic
	case isBold:
		return bold
	case isItalic:
		return italic
	default:
		return regular
	}
}

type faceKey struct {
	v    variant
	size float64
}

// Fonts caches the Go font family at the sizes a render pass asks for.
type Fonts struct {
	mu    sync.Mutex
	fonts [4]*truetype.Font
	faces map[faceKey]font.Face
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	f := &Fonts{faces: make(map[faceKey]font.Face)}
	for v, ttf := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
		parsed, err := truetype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font %d: %w", v, err)
		}
		f.fonts[v] = parsed
	}
	return f, nil
}

// Face returns a face for the given style at size points (72 DPI, so one
// point is one pixel).
func (f *Fonts) Face(isBold, isItalic bool, size float64) font.Face {
	if size <= 0 {
		size = 1
	}
	key := faceKey{v: variantOf(isBold, isItalic), size: size}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(f.fonts[key.v], &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	f.faces[key] = face
	return face
}

// Measure returns the advance width of s in pixels.
func Measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}
