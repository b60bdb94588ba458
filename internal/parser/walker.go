package parser

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/riverfjs/richtext-go/internal/buffer"
	"github.com/riverfjs/richtext-go/internal/types"
)

// Span is a range request produced from markdown; offsets are UTF-16.
type Span struct {
	Kind      types.Kind
	Start     int
	End       int
	Style     types.StyleKind
	ColorKind types.ColorKind
	Color     color.NRGBA
	URL       string
}

// List asks for one decoration per line in [StartLine, EndLine] (1-based,
// inclusive). Every line in the range starts a list item; ordinals count up
// from Number.
type List struct {
	Ordered   bool
	StartLine int
	EndLine   int
	Number    int
}

// ImageRef marks the placeholder symbol written for a markdown image.
type ImageRef struct {
	Start int
	End   int
	Src   string
	Alt   string
}

// Document is the parsed result.
type Document struct {
	Text   string
	Spans  []Span
	Lists  []List
	Images []ImageRef
}

type scope struct {
	span Span
}

// Walker 遍历 goldmark AST 并生成 Document
type Walker struct {
	buf    *buffer.Builder
	source []byte
	config *types.RenderConfig

	scopes []scope
	spans  []Span
	lists  []List
	images []ImageRef

	blockCount int
	listDepth  int
	listStack  []*listFrame
	inHeading  int
	cellIndex  int
}

// NewWalker 创建新的 Walker
func NewWalker(source []byte, config *types.RenderConfig) *Walker {
	return &Walker{
		buf:    buffer.NewBuilder(),
		source: source,
		config: config,
		scopes: make([]scope, 0),
		spans:  make([]Span, 0),
		lists:  make([]List, 0),
	}
}

// Result 返回转换结果
func (w *Walker) Result() *Document {
	return &Document{Text: w.buf.String(), Spans: w.spans, Lists: w.lists, Images: w.images}
}

// Walk 遍历 AST 节点
func (w *Walker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.buf.Write(string(n.Segment.Value(w.source)))
			if n.HardLineBreak() {
				w.buf.Write("\n")
			} else if n.SoftLineBreak() {
				// soft breaks stay inside the paragraph
				w.buf.Write(" ")
			}
		}

	case *ast.String:
		if entering {
			w.buf.Write(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.onInlineCode(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		if entering {
			if n.Level == 2 {
				w.pushStyle(types.StyleBold)
			} else {
				w.pushStyle(types.StyleItalic)
			}
		} else {
			w.pop()
		}

	case *east.Strikethrough:
		if entering {
			w.pushStyle(types.StyleStrikethrough)
		} else {
			w.pop()
		}

	// --- Links & Images ---
	case *ast.Link:
		if entering {
			w.push(Span{Kind: types.KindLink, URL: string(n.Destination)})
		} else {
			w.pop()
		}

	case *ast.Image:
		if entering {
			src := string(n.Destination)
			w.push(Span{Kind: types.KindLink, URL: src})
			start := w.buf.UTF16Offset()
			w.buf.Write(w.config.Symbol.Image)
			if src != "" {
				w.images = append(w.images, ImageRef{
					Start: start,
					End:   w.buf.UTF16Offset(),
					Src:   src,
					Alt:   string(n.Text(w.source)),
				})
			}
			w.buf.Write(" ")
		} else {
			w.pop()
		}

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(w.source))
			w.push(Span{Kind: types.KindLink, URL: url})
			w.buf.Write(url)
			w.pop()
			return ast.WalkSkipChildren, nil
		}

	// --- Block elements ---
	case *ast.Paragraph:
		if entering {
			if w.listDepth == 0 {
				w.ensureBlockSpacing()
			} else if f := w.listStack[len(w.listStack)-1]; f.joinAt == w.buf.UTF16Offset() {
				// later paragraphs of an item stay on the item's line
				w.trimTrailingNewline()
				w.buf.Write(" ")
			}
		} else if w.listDepth == 0 {
			w.blockCount++
		} else {
			if w.buf.TrailingNewlineCount() == 0 {
				w.buf.Write("\n")
			}
			w.listStack[len(w.listStack)-1].joinAt = w.buf.UTF16Offset()
		}

	case *ast.TextBlock:
		// tight list items hold a TextBlock instead of a Paragraph

	case *ast.Heading:
		if entering {
			w.onStartHeading(n)
		} else {
			w.onEndHeading()
		}

	case *ast.Blockquote:
		if entering {
			w.ensureBlockSpacing()
			w.pushStyle(types.StyleItalic)
			w.push(Span{Kind: types.KindColor, ColorKind: types.ColorForeground, Color: w.config.QuoteColor})
		} else {
			w.trimTrailingNewline()
			w.pop()
			w.pop()
			w.blockCount++
		}

	case *ast.List:
		if entering {
			w.onStartList(n)
		} else {
			w.onEndList()
		}

	case *ast.ListItem:
		if entering {
			w.onStartItem()
		} else {
			w.onEndItem()
		}

	case *east.TaskCheckBox:
		if entering {
			if n.IsChecked {
				w.buf.Write("[x] ")
			} else {
				w.buf.Write("[ ] ")
			}
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			w.ensureBlockSpacing()
			w.buf.Write("————————")
			w.blockCount++
		}

	case *ast.HTMLBlock, *ast.RawHTML:
		return ast.WalkSkipChildren, nil

	// --- Table ---
	case *east.Table:
		if entering {
			w.ensureBlockSpacing()
		} else {
			w.trimTrailingNewline()
			w.blockCount++
		}

	case *east.TableHeader, *east.TableRow:
		if entering {
			w.cellIndex = 0
		} else {
			w.buf.Write("\n")
		}

	case *east.TableCell:
		if entering {
			if w.cellIndex > 0 {
				w.buf.Write(" | ")
			}
			w.cellIndex++
		}
	}

	return ast.WalkContinue, nil
}

func (w *Walker) onInlineCode(n *ast.CodeSpan) {
	var code strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			code.Write(t.Segment.Value(w.source))
		}
	}
	w.push(w.codeSpan())
	w.buf.Write(code.String())
	w.pop()
}

func (w *Walker) onCodeBlock(n ast.Node) {
	w.ensureBlockSpacing()
	var code strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(w.source))
	}
	raw := strings.TrimSuffix(code.String(), "\n")

	w.push(w.codeSpan())
	w.buf.Write(raw)
	w.pop()
	w.blockCount++
}

func (w *Walker) codeSpan() Span {
	return Span{Kind: types.KindColor, ColorKind: types.ColorHighlight, Color: w.config.CodeHighlight}
}

// --- Heading ---

var headingStyles = map[int][]types.StyleKind{
	1: {types.StyleBold, types.StyleUnderline},
	2: {types.StyleBold, types.StyleUnderline},
	3: {types.StyleBold},
	4: {types.StyleBold},
	5: {types.StyleItalic},
	6: {types.StyleItalic},
}

func (w *Walker) onStartHeading(n *ast.Heading) {
	w.ensureBlockSpacing()
	styles := headingStyles[n.Level]
	if styles == nil {
		styles = []types.StyleKind{types.StyleBold}
	}
	for _, s := range styles {
		w.pushStyle(s)
	}
	w.inHeading = len(styles)
}

func (w *Walker) onEndHeading() {
	for ; w.inHeading > 0; w.inHeading-- {
		w.pop()
	}
	w.blockCount++
}

// --- Lists ---

type listItem struct {
	line    int
	ordinal int
	empty   bool
}

type listFrame struct {
	ordered bool
	next    int
	items   []listItem
	// offset just past the current item's indentation
	contentStart int
	// offset right after the current item's last paragraph, or -1
	joinAt int
}

func (w *Walker) onStartList(n *ast.List) {
	if w.listDepth == 0 {
		w.ensureBlockSpacing()
	}
	first := 1
	if n.IsOrdered() {
		first = n.Start
	}
	w.listStack = append(w.listStack, &listFrame{ordered: n.IsOrdered(), next: first, joinAt: -1})
	w.listDepth++
}

func (w *Walker) onEndList() {
	f := w.listStack[len(w.listStack)-1]
	w.listStack = w.listStack[:len(w.listStack)-1]
	w.lists = append(w.lists, f.ranges()...)

	w.listDepth--
	if w.listDepth > 0 {
		return
	}
	w.trimTrailingNewline()
	w.blockCount++
}

func (w *Walker) onStartItem() {
	if n := len(w.listStack); n > 1 {
		// a nested list opening an item leaves the parent item's line empty
		if p := w.listStack[n-2]; w.buf.UTF16Offset() == p.contentStart {
			p.items[len(p.items)-1].empty = true
		}
	}
	if w.buf.UTF16Offset() > 0 && w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}
	f := w.listStack[len(w.listStack)-1]
	f.items = append(f.items, listItem{line: w.buf.LineCount() + 1, ordinal: f.next})
	f.next++
	w.buf.Write(strings.Repeat("  ", w.listDepth-1))
	f.contentStart = w.buf.UTF16Offset()
	f.joinAt = -1
}

func (w *Walker) onEndItem() {
	f := w.listStack[len(w.listStack)-1]
	if w.buf.UTF16Offset() == f.contentStart {
		f.items[len(f.items)-1].empty = true
	}
	if w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}
}

// ranges groups items on consecutive lines with consecutive ordinals. Empty
// items end a range and get no decoration.
func (f *listFrame) ranges() []List {
	var out []List
	for _, it := range f.items {
		if it.empty {
			continue
		}
		if n := len(out); n > 0 {
			last := &out[n-1]
			if it.line == last.EndLine+1 && it.ordinal == last.Number+last.EndLine-last.StartLine+1 {
				last.EndLine = it.line
				continue
			}
		}
		out = append(out, List{Ordered: f.ordered, StartLine: it.line, EndLine: it.line, Number: it.ordinal})
	}
	return out
}

// --- Span helpers ---

func (w *Walker) pushStyle(k types.StyleKind) {
	w.push(Span{Kind: types.KindStyle, Style: k})
}

func (w *Walker) push(s Span) {
	s.Start = w.buf.UTF16Offset()
	w.scopes = append(w.scopes, scope{span: s})
}

func (w *Walker) pop() {
	if len(w.scopes) == 0 {
		return
	}
	sc := w.scopes[len(w.scopes)-1]
	w.scopes = w.scopes[:len(w.scopes)-1]

	sc.span.End = w.buf.UTF16Offset()
	if sc.span.End <= sc.span.Start {
		return
	}
	if sc.span.Kind == types.KindLink && sc.span.URL == "" {
		// links without a destination render as plain text
		return
	}
	w.spans = append(w.spans, sc.span)
}

// ensureBlockSpacing keeps one empty line between blocks.
func (w *Walker) ensureBlockSpacing() {
	if w.blockCount > 0 {
		needed := 2 - w.buf.TrailingNewlineCount()
		if needed > 0 {
			w.buf.Write(strings.Repeat("\n", needed))
		}
	}
}

// trimTrailingNewline leaves the block ending on its last character so the
// next ensureBlockSpacing inserts exactly one empty line.
func (w *Walker) trimTrailingNewline() {
	if w.buf.TrailingNewlineCount() == 0 {
		return
	}
	s := strings.TrimRight(w.buf.String(), "\n")
	w.buf.Reset()
	w.buf.Write(s)
}

func (s Span) String() string {
	return fmt.Sprintf("%s[%d,%d)", s.Kind, s.Start, s.End)
}
