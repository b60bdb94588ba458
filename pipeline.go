package richtext

import (
	"context"
	"image"
	"io"
	"net/http"

	"github.com/riverfjs/richtext-go/internal/imageload"
	"github.com/riverfjs/richtext-go/internal/parser"
	"github.com/riverfjs/richtext-go/internal/raster"
	"github.com/riverfjs/richtext-go/internal/term"
)

type (
	RasterOptions   = raster.Options
	TerminalOptions = term.Options
	ImageRef        = parser.ImageRef
)

// DefaultRasterOptions 返回默认画布配置
func DefaultRasterOptions() RasterOptions { return raster.DefaultOptions() }

// ResolveImages 下载并解码 doc 中的图片，为占位符添加图片 span
//
// 处理流程（逐个图片）：
//  1. 本地路径直接读取，http(s) 地址通过 client 下载
//  2. 校验魔术字节并解码
//  3. 成功则在占位符范围上添加图片 span，失败则保留链接并记录日志
//
// 返回成功添加的图片数量。所有图片 span 作为一次修改提交。
func (v *View) ResolveImages(ctx context.Context, doc *Document, client *http.Client) int {
	type loaded struct {
		ref ImageRef
		img image.Image
	}
	var ok []loaded
	for _, ref := range doc.Images {
		if err := ctx.Err(); err != nil {
			Logger.Printf("stop resolving images: %v", err)
			break
		}
		img, err := imageload.Load(ctx, ref.Src, client)
		if err != nil {
			Logger.Printf("failed to load image %s, keep link: %v", ref.Src, err)
			continue
		}
		ok = append(ok, loaded{ref: ref, img: img})
	}

	added := 0
	_ = v.Batch(func() error {
		for _, l := range ok {
			if _, err := v.AddImageSpan(l.ref.Start, l.ref.End, l.img); err != nil {
				Logger.Printf("skip image %s: %v", l.ref.Src, err)
				continue
			}
			added++
		}
		return nil
	})
	return added
}

// RenderImage 用内置的 gg 渲染器将当前内容绘制为图片
func (v *View) RenderImage(opts RasterOptions) (image.Image, error) {
	r, err := raster.New(v.opts.Config, opts)
	if err != nil {
		return nil, err
	}
	return r.Render(v.Snapshot()), nil
}

// RenderPNG 将当前内容绘制为 PNG 并写入 w
func (v *View) RenderPNG(w io.Writer, opts RasterOptions) error {
	r, err := raster.New(v.opts.Config, opts)
	if err != nil {
		return err
	}
	return r.RenderPNG(w, v.Snapshot())
}

// RenderTerminal 将当前内容渲染为终端文本（lipgloss 样式）
func (v *View) RenderTerminal(opts TerminalOptions) string {
	return term.New(v.opts.Config, opts).Render(v.Snapshot())
}
