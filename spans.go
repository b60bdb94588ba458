package richtext

import (
	"image"
	"image/color"
	"time"

	"github.com/riverfjs/richtext-go/internal/fade"
	"github.com/riverfjs/richtext-go/internal/margin"
	"github.com/riverfjs/richtext-go/internal/segment"
	"github.com/riverfjs/richtext-go/internal/span"
	"github.com/riverfjs/richtext-go/internal/types"
)

// AddStyleSpan 为 [start, end) 添加一个文本样式
//
// start 必须满足 0 <= start < Len()，end 必须满足 start <= end <= Len()，
// 否则返回 *RangeError 且不做任何修改。
func (v *View) AddStyleSpan(start, end int, kind StyleKind) (Handle, error) {
	return v.addOne(span.Record{Kind: types.KindStyle, Start: start, End: end, Style: kind})
}

// AddStyleSpans 为同一范围添加多个样式，只触发一次重绘通知
func (v *View) AddStyleSpans(start, end int, kinds ...StyleKind) ([]Handle, error) {
	if len(kinds) == 0 {
		return nil, &types.ConfigError{Param: "style kinds", Reason: "empty"}
	}
	recs := make([]span.Record, 0, len(kinds))
	for _, k := range kinds {
		recs = append(recs, span.Record{Kind: types.KindStyle, Start: start, End: end, Style: k})
	}
	return v.reg.Add(recs...)
}

// AddColorSpan 为 [start, end) 设置前景色或高亮色
func (v *View) AddColorSpan(start, end int, kind ColorKind, c color.Color) (Handle, error) {
	if c == nil {
		return Handle{}, &types.ConfigError{Param: "color", Reason: "nil"}
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return v.addOne(span.Record{Kind: types.KindColor, Start: start, End: end, ColorKind: kind, Color: nc})
}

// AddImageSpan 用图片替换 [start, end) 的显示
func (v *View) AddImageSpan(start, end int, img image.Image) (Handle, error) {
	return v.addOne(span.Record{Kind: types.KindImage, Start: start, End: end, Image: img})
}

// AddHyperlinkSpan 为 [start, end) 添加超链接；点击分发由宿主负责
func (v *View) AddHyperlinkSpan(start, end int, url string) (Handle, error) {
	return v.addOne(span.Record{Kind: types.KindLink, Start: start, End: end, URL: url})
}

// AddScaleXSpan 水平缩放 [start, end) 的文字，factor 必须大于 0
func (v *View) AddScaleXSpan(start, end int, factor float64) (Handle, error) {
	return v.addOne(span.Record{Kind: types.KindScaleX, Start: start, End: end, ScaleX: factor})
}

// AddFade 为 [start, end) 添加淡入效果并立即开始
//
// alpha 在 duration 内从 0 线性增加到 255，由宿主周期性调用 Tick 推进。
func (v *View) AddFade(start, end int, duration time.Duration) (Handle, error) {
	tr := fade.New(duration)
	h, err := v.addOne(span.Record{Kind: types.KindFade, Start: start, End: end, Fade: tr})
	if err != nil {
		return Handle{}, err
	}
	tr.Start(v.now())
	return h, nil
}

// AddLineDecorations 为第 startLine 到 endLine 行（从 1 开始，含两端）添加编号或圆点
//
// 空行不会获得装饰，但仍计入偏移量。编号从 1 开始按行顺序分配，
// 每次调用都重新编号。所有装饰作为一次修改提交。
func (v *View) AddLineDecorations(startLine, endLine int, kind DecorationKind, opts ...DecorationOption) ([]Handle, error) {
	o := &DecorationOptions{}
	for _, opt := range opts {
		opt(o)
	}
	cfg := v.opts.Config

	var build func(i int) margin.Decoration
	switch kind {
	case DecorationNumber:
		nc := cfg.Number
		if o.GapWidth > 0 {
			nc.GapWidth = o.GapWidth
		}
		if o.TextSize > 0 {
			nc.TextSize = o.TextSize
		}
		if nc.TextSize <= 0 {
			nc.TextSize = cfg.TextSize
		}
		nc.Suppressed = nc.Suppressed || o.Suppressed
		first := 1
		if o.FirstNumber != nil {
			first = *o.FirstNumber
		}
		build = func(i int) margin.Decoration { return margin.NewNumber(first+i, nc) }
	case DecorationBullet:
		bc := cfg.Bullet
		if o.GapWidth > 0 {
			bc.GapWidth = o.GapWidth
		}
		if o.Radius > 0 {
			bc.Radius = o.Radius
		}
		if o.Color != nil {
			bc.Color = *o.Color
		}
		bc.Suppressed = bc.Suppressed || o.Suppressed
		build = func(int) margin.Decoration { return margin.NewBullet(bc) }
	default:
		return nil, &types.ConfigError{Param: "decoration kind"}
	}

	lines := segment.Split(v.Text())
	anchors := segment.MapLineRange(lines, startLine, endLine)
	recs := make([]span.Record, 0, len(anchors))
	for i, a := range anchors {
		recs = append(recs, span.Record{
			Kind:       types.KindDecoration,
			Start:      a.Offset,
			End:        a.Offset + a.Length,
			Decoration: build(i),
		})
	}
	return v.reg.Add(recs...)
}

// RemoveSpan 按 handle 删除一个 span；不存在时返回 ErrSpanNotFound
func (v *View) RemoveSpan(h Handle) error {
	return v.reg.Remove(h)
}

// ClearAllSpans 删除所有 span
func (v *View) ClearAllSpans() {
	v.reg.Clear()
}

// QuerySpans 按插入顺序返回 span，可按类别过滤
func (v *View) QuerySpans(kinds ...Kind) []Span {
	return v.reg.Query(kinds...)
}

// QueryRange 返回与 [start, end) 重叠的 span
func (v *View) QueryRange(start, end int) []Span {
	return v.reg.QueryRange(start, end)
}

// Span returns the span named by h.
func (v *View) Span(h Handle) (Span, bool) {
	return v.reg.Get(h)
}

// SpanCount 返回当前 span 数量
func (v *View) SpanCount() int {
	return v.reg.Len()
}

// Tick 推进所有进行中的淡入动画
//
// 只要有动画被采样就触发一次重绘通知。返回值表示是否仍有动画需要后续 tick。
func (v *View) Tick(now time.Time) bool {
	sampled := false
	active := false
	for _, rec := range v.reg.Query(types.KindFade) {
		if rec.Fade.Tick(now) {
			sampled = true
		}
		if rec.Fade.Active() {
			active = true
		}
	}
	if sampled {
		v.invalidate()
	}
	return active
}

func (v *View) addOne(rec span.Record) (Handle, error) {
	hs, err := v.reg.Add(rec)
	if err != nil {
		return Handle{}, err
	}
	return hs[0], nil
}
