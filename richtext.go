// Package richtext 在不可变文本上叠加多个可重叠的样式注解（span）
//
// 这个包提供一个与具体 UI 框架无关的富文本注解模型，宿主渲染层只需
// 实现布局与绘制回调即可。
//
// 核心功能：
//   - 按 [start, end) UTF-16 偏移添加样式、颜色、链接、图片、缩放 span
//   - 按段落（行号）添加编号或圆点前缀装饰
//   - 淡入动画：由外部时钟驱动的 alpha 状态机
//   - 每次修改只触发一次重绘通知
//
// 主要 API：
//   - New() / LoadMarkdown(): 创建 View
//   - View.AddStyleSpan() 等: 添加注解
//   - View.Tick(): 推进淡入动画
//
// 示例：
//
//	v := richtext.New(richtext.WithInvalidate(redraw))
//	v.SetText("Hello, world!\nSecond line")
//	v.AddStyleSpan(0, 5, richtext.StyleBold)
//	v.AddLineDecorations(1, 2, richtext.DecorationNumber)
package richtext

import (
	"time"

	"github.com/riverfjs/richtext-go/internal/buffer"
	"github.com/riverfjs/richtext-go/internal/span"
)

// View owns one text buffer and the annotations placed on it.
//
// A View is not safe for concurrent use. The host calls every method,
// including Tick, from the goroutine that owns its rendering surface.
type View struct {
	opts *ConvertOptions
	reg  *span.Registry

	batchDepth int
	pending    bool
}

// New creates a View with an empty buffer.
func New(opts ...Option) *View {
	v := &View{opts: applyOptions(opts...)}
	v.reg = span.New(buffer.NewText(""), v.invalidate)
	return v
}

// SetText replaces the buffer. Every existing span is discarded because
// span offsets are meaningless against new content.
func (v *View) SetText(text string) {
	old := v.reg
	v.reg = span.New(buffer.NewText(text), v.invalidate)
	for _, rec := range old.Query() {
		if rec.Fade != nil {
			rec.Fade.Cancel()
		}
	}
	v.invalidate()
}

// Text returns the buffer content.
func (v *View) Text() string { return v.reg.Text().String() }

// Len returns the buffer length in UTF-16 code units.
func (v *View) Len() int { return v.reg.Text().Len() }

// Fingerprint identifies the buffer content; see buffer.Text.Fingerprint.
func (v *View) Fingerprint() string { return v.reg.Text().Fingerprint() }

// Config returns the render configuration in effect.
func (v *View) Config() *RenderConfig { return v.opts.Config }

// Snapshot captures text and spans for a render pass.
func (v *View) Snapshot() Snapshot { return v.reg.Snapshot() }

// Batch runs fn and coalesces every notification it causes into one.
// Mutations made before fn returns an error are kept.
func (v *View) Batch(fn func() error) error {
	v.batchDepth++
	defer func() {
		v.batchDepth--
		if v.batchDepth == 0 && v.pending {
			v.pending = false
			v.invalidate()
		}
	}()
	return fn()
}

func (v *View) invalidate() {
	if v.batchDepth > 0 {
		v.pending = true
		return
	}
	if v.opts.Invalidate != nil {
		v.opts.Invalidate()
	}
}

func (v *View) now() time.Time {
	if v.opts.Clock != nil {
		return v.opts.Clock()
	}
	return time.Now()
}
