package richtext

import (
	"fmt"

	"github.com/riverfjs/richtext-go/internal/buffer"
)

type section struct {
	start  int
	end    int
	styles []StyleKind
}

// Builder 逐段拼接文本，并记录每段的样式
//
//	v, err := richtext.NewBuilder().
//		Append("Hello ", richtext.StyleBold).
//		Append("world").
//		Build()
type Builder struct {
	buf      *buffer.Builder
	sections []section
}

// NewBuilder 创建空的 Builder
func NewBuilder() *Builder {
	return &Builder{buf: buffer.NewBuilder()}
}

// Append 追加一段文本，styles 覆盖整段
func (b *Builder) Append(text string, styles ...StyleKind) *Builder {
	start := b.buf.UTF16Offset()
	b.buf.Write(text)
	if len(styles) > 0 {
		b.sections = append(b.sections, section{start: start, end: b.buf.UTF16Offset(), styles: styles})
	}
	return b
}

// String 返回已拼接的文本
func (b *Builder) String() string { return b.buf.String() }

// Len 返回已拼接文本的 UTF-16 长度
func (b *Builder) Len() int { return b.buf.UTF16Offset() }

// Build 创建 View 并应用所有样式，只触发一次重绘通知
func (b *Builder) Build(opts ...Option) (*View, error) {
	v := New(opts...)
	if err := b.ApplyTo(v); err != nil {
		return nil, err
	}
	return v, nil
}

// ApplyTo 用 Builder 的内容替换 v 的文本和 span
func (b *Builder) ApplyTo(v *View) error {
	return v.Batch(func() error {
		v.SetText(b.String())
		for _, s := range b.sections {
			if s.end <= s.start {
				continue
			}
			if _, err := v.AddStyleSpans(s.start, s.end, s.styles...); err != nil {
				return fmt.Errorf("style section [%d,%d): %w", s.start, s.end, err)
			}
		}
		return nil
	})
}
