package richtext

import (
	"bytes"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/riverfjs/richtext-go/internal/margin"
)

// TestLoadMarkdown 测试 Markdown 加载
func TestLoadMarkdown(t *testing.T) {
	c := &counter{}
	v, err := LoadMarkdown("# Title\n\nSome **bold** text.\n\n1. one\n2. two\n", WithInvalidate(c.inc))
	if err != nil {
		t.Fatalf("LoadMarkdown() error = %v", err)
	}
	if want := "Title\n\nSome bold text.\n\none\ntwo"; v.Text() != want {
		t.Errorf("Text() = %q, want %q", v.Text(), want)
	}
	if c.n != 1 {
		t.Errorf("notifications = %d, want 1", c.n)
	}

	decos := v.QuerySpans(KindDecoration)
	if len(decos) != 2 || decos[0].Start != 24 || decos[1].Start != 28 {
		t.Errorf("decorations = %v, want anchors at 24 and 28", decos)
	}

	a := v.Snapshot().Attributes(12, 16)
	if !a.Bold || a.Italic {
		t.Errorf("Attributes(12, 16) = %+v, want bold only", a)
	}
}

// TestLoadMarkdown_Bullets 测试无序列表转换为圆点装饰
func TestLoadMarkdown_Bullets(t *testing.T) {
	v, err := LoadMarkdown("- first\n- second\n- third")
	if err != nil {
		t.Fatal(err)
	}
	decos := v.QuerySpans(KindDecoration)
	if len(decos) != 3 {
		t.Fatalf("decorations = %d, want 3", len(decos))
	}
	if got := v.RenderTerminal(TerminalOptions{Output: &bytes.Buffer{}}); got != "•   first\n•   second\n•   third" {
		t.Errorf("RenderTerminal() = %q", got)
	}
}

// TestLoadMarkdown_ListOrdinals 测试编号按列表项计算
func TestLoadMarkdown_ListOrdinals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[int]int // anchor offset -> ordinal
	}{
		{"multi-paragraph item", "1. a\n\n   para in a\n2. b", map[int]int{0: 1, 12: 2}},
		{"nested ordered", "1. a\n   1. x\n   2. y\n2. b", map[int]int{0: 1, 2: 1, 6: 2, 10: 2}},
		{"start number", "3. c\n4. d", map[int]int{0: 3, 2: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := LoadMarkdown(tt.input)
			if err != nil {
				t.Fatalf("LoadMarkdown() error = %v", err)
			}
			got := make(map[int]int)
			for _, rec := range v.QuerySpans(KindDecoration) {
				got[rec.Start] = rec.Decoration.(*margin.Number).Ordinal()
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ordinals = %v, want %v (text %q)", got, tt.want, v.Text())
			}
		})
	}
}

// TestApplyDocument_SkipsBadSpans 测试无效的 span 被记录并跳过
func TestApplyDocument_SkipsBadSpans(t *testing.T) {
	var logs bytes.Buffer
	old := Logger
	SetLogger(log.New(&logs, "", 0))
	defer SetLogger(old)

	v, _ := newView(t, "short")
	doc := &Document{
		Text: "short",
		Spans: []DocumentSpan{
			{Kind: KindStyle, Start: 0, End: 5, Style: StyleBold},
			{Kind: KindStyle, Start: 0, End: 50, Style: StyleItalic},
		},
	}
	if err := v.ApplyDocument(doc); err != nil {
		t.Fatalf("ApplyDocument() error = %v", err)
	}
	if v.SpanCount() != 1 {
		t.Errorf("SpanCount() = %d, want 1", v.SpanCount())
	}
	if !strings.Contains(logs.String(), "skip markdown span") {
		t.Errorf("expected a skip log, got %q", logs.String())
	}
}

// TestParseMarkdown_CustomConfig 测试自定义符号
func TestParseMarkdown_CustomConfig(t *testing.T) {
	cfg := DefaultConfig().Clone()
	cfg.Symbol.Image = "[img]"
	doc := ParseMarkdown("![cat](cat.png)", cfg)
	if !strings.HasPrefix(doc.Text, "[img] ") {
		t.Errorf("Text = %q", doc.Text)
	}
	if DefaultConfig().Symbol.Image == "[img]" {
		t.Error("Clone() should not modify the shared default")
	}
}
