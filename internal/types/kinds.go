package types

import "image/color"

// Kind 标识注解记录的类别
type Kind int

const (
	KindStyle Kind = iota + 1
	KindColor
	KindLink
	KindImage
	KindDecoration
	KindFade
	KindScaleX
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindStyle:
		return "style"
	case KindColor:
		return "color"
	case KindLink:
		return "link"
	case KindImage:
		return "image"
	case KindDecoration:
		return "decoration"
	case KindFade:
		return "fade"
	case KindScaleX:
		return "scale_x"
	default:
		return "unknown"
	}
}

// StyleKind 文本样式种类；零值表示未指定
type StyleKind int

const (
	StyleNormal StyleKind = iota + 1
	StyleBold
	StyleItalic
	StyleUnderline
	StyleStrikethrough
	StyleSuperscript
	StyleSubscript
)

var styleNames = map[StyleKind]string{
	StyleNormal:        "normal",
	StyleBold:          "bold",
	StyleItalic:        "italic",
	StyleUnderline:     "underline",
	StyleStrikethrough: "strikethrough",
	StyleSuperscript:   "superscript",
	StyleSubscript:     "subscript",
}

// String returns the string representation of StyleKind.
func (k StyleKind) String() string {
	if name, ok := styleNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether k is one of the declared style kinds.
func (k StyleKind) Valid() bool {
	_, ok := styleNames[k]
	return ok
}

// ParseStyleKind maps a style name back to its kind.
func ParseStyleKind(name string) (StyleKind, bool) {
	for k, n := range styleNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// ColorKind 颜色格式种类；零值表示未指定
type ColorKind int

const (
	ColorForeground ColorKind = iota + 1
	ColorHighlight
)

// String returns the string representation of ColorKind.
func (k ColorKind) String() string {
	switch k {
	case ColorForeground:
		return "foreground"
	case ColorHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the declared colour kinds.
func (k ColorKind) Valid() bool {
	return k == ColorForeground || k == ColorHighlight
}

// Attributes is the renderer-neutral description of how a run of text is drawn.
// Renderers start from the zero value and let every overlapping record apply
// itself in insertion order.
type Attributes struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Superscript   bool
	Subscript     bool

	// nil means inherit the host colour
	Foreground color.Color
	Background color.Color

	// Alpha scales the foreground; 255 is opaque.
	Alpha  int
	ScaleX float64

	Link  string
	Image bool
}

// BaseAttributes returns the attributes of unannotated text.
func BaseAttributes() Attributes {
	return Attributes{Alpha: 255, ScaleX: 1}
}

// Apply folds the style kind into a.
// StyleNormal never clears earlier styles, matching a NORMAL typeface span.
func (k StyleKind) Apply(a *Attributes) {
	switch k {
	case StyleBold:
		a.Bold = true
	case StyleItalic:
		a.Italic = true
	case StyleUnderline:
		a.Underline = true
	case StyleStrikethrough:
		a.Strikethrough = true
	case StyleSuperscript:
		a.Superscript = true
		a.Subscript = false
	case StyleSubscript:
		a.Subscript = true
		a.Superscript = false
	}
}

// Apply folds the colour kind with c into a.
func (k ColorKind) Apply(a *Attributes, c color.Color) {
	switch k {
	case ColorForeground:
		a.Foreground = c
	case ColorHighlight:
		a.Background = c
	}
}
