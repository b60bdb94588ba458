package richtext

import (
	"testing"
)

// TestBuilder 测试逐段构建
func TestBuilder(t *testing.T) {
	c := &counter{}
	b := NewBuilder().
		Append("Hello ", StyleBold).
		Append("📌").
		Append(" world", StyleItalic, StyleUnderline).
		Append("", StyleStrikethrough)

	if b.String() != "Hello 📌 world" {
		t.Fatalf("String() = %q", b.String())
	}
	if b.Len() != 14 {
		t.Errorf("Len() = %d, want 14", b.Len())
	}

	v, err := b.Build(WithInvalidate(c.inc))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if c.n != 1 {
		t.Errorf("notifications = %d, want 1", c.n)
	}

	spans := v.QuerySpans()
	if len(spans) != 3 {
		t.Fatalf("QuerySpans() = %v, want 3 spans", spans)
	}
	want := []struct {
		start, end int
		style      StyleKind
	}{
		{0, 6, StyleBold},
		{8, 14, StyleItalic},
		{8, 14, StyleUnderline},
	}
	for i, w := range want {
		s := spans[i]
		if s.Start != w.start || s.End != w.end || s.Style != w.style {
			t.Errorf("span %d = [%d,%d) %v, want [%d,%d) %v", i, s.Start, s.End, s.Style, w.start, w.end, w.style)
		}
	}
}

// TestBuilder_ApplyTo 测试应用到已有 View
func TestBuilder_ApplyTo(t *testing.T) {
	v, c := newView(t, "old text")
	v.AddStyleSpan(0, 3, StyleBold)
	c.n = 0

	if err := NewBuilder().Append("new", StyleItalic).ApplyTo(v); err != nil {
		t.Fatal(err)
	}
	if v.Text() != "new" || v.SpanCount() != 1 {
		t.Errorf("Text() = %q, SpanCount() = %d", v.Text(), v.SpanCount())
	}
	if c.n != 1 {
		t.Errorf("notifications = %d, want 1", c.n)
	}
}
