// Package imageload fetches and decodes the pictures carried by image spans.
package imageload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/webp"
)

// MaxSize 单张图片的最大字节数
const MaxSize = 16 << 20

// Download 下载图片
func Download(ctx context.Context, url string, client *http.Client) (*bytes.Buffer, error) {
	if client == nil {
		client = &http.Client{
			Timeout: 10 * time.Second,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "richtext-go")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return readLimited(resp.Body)
}

func readLimited(r io.Reader) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(r, MaxSize+1)); err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if buf.Len() > MaxSize {
		return nil, fmt.Errorf("image exceeds %d bytes", MaxSize)
	}
	return &buf, nil
}

// ReadFile reads a local image, enforcing MaxSize.
func ReadFile(path string) (*bytes.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLimited(f)
}

// IsImage 通过魔术字节判断数据是否为支持的图片格式
func IsImage(data []byte) bool {
	if len(data) < 8 {
		return false
	}

	switch {
	case data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G':
		return true
	case data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return true
	case string(data[:4]) == "GIF8":
		return true
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return true
	}
	return false
}

// Decode 解码图片，返回图片和格式名
func Decode(data []byte) (image.Image, string, error) {
	if !IsImage(data) {
		return nil, "", fmt.Errorf("unsupported image data")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Load 从本地路径或 http(s) URL 加载图片
func Load(ctx context.Context, src string, client *http.Client) (image.Image, error) {
	var (
		buf *bytes.Buffer
		err error
	)
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		buf, err = Download(ctx, src, client)
	} else {
		buf, err = ReadFile(src)
	}
	if err != nil {
		return nil, err
	}

	img, _, err := Decode(buf.Bytes())
	return img, err
}
