package richtext

import (
	"github.com/riverfjs/richtext-go/internal/parser"
	"github.com/riverfjs/richtext-go/internal/span"
)

type (
	// Document 是 Markdown 解析结果：纯文本 + span 请求
	Document     = parser.Document
	DocumentSpan = parser.Span
	DocumentList = parser.List
)

// ParseMarkdown 将 Markdown 转换为纯文本与 span 请求，不创建 View
func ParseMarkdown(markdown string, config *RenderConfig) *Document {
	if config == nil {
		config = DefaultConfig()
	}
	return parser.Parse(markdown, config)
}

// LoadMarkdown 解析 Markdown 并返回已应用所有 span 的 View
//
// 标题、强调、删除线、代码、链接、引用转换为对应的 span；
// 有序列表转换为编号装饰，无序列表转换为圆点装饰。
// 整个加载过程只触发一次重绘通知。无法应用的 span 会被记录并跳过。
func LoadMarkdown(markdown string, opts ...Option) (*View, error) {
	v := New(opts...)
	doc := ParseMarkdown(markdown, v.opts.Config)

	err := v.Batch(func() error {
		v.SetText(doc.Text)
		return v.ApplyDocument(doc)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ApplyDocument adds the span requests of doc to the current buffer.
func (v *View) ApplyDocument(doc *Document) error {
	return v.Batch(func() error {
		for _, s := range doc.Spans {
			rec := span.Record{
				Kind:      s.Kind,
				Start:     s.Start,
				End:       s.End,
				Style:     s.Style,
				ColorKind: s.ColorKind,
				Color:     s.Color,
				URL:       s.URL,
			}
			if _, err := v.reg.Add(rec); err != nil {
				Logger.Printf("skip markdown span %s: %v", s, err)
			}
		}
		for _, l := range doc.Lists {
			kind := DecorationBullet
			if l.Ordered {
				kind = DecorationNumber
			}
			if _, err := v.AddLineDecorations(l.StartLine, l.EndLine, kind, WithFirstNumber(l.Number)); err != nil {
				return err
			}
		}
		return nil
	})
}
