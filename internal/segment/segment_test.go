package segment

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Line
	}{
		{
			name: "empty",
			text: "",
			want: []Line{},
		},
		{
			name: "interior empty line kept",
			text: "A\n\nB\nC",
			want: []Line{
				{Index: 0, Start: 0, End: 1, Text: "A"},
				{Index: 1, Start: 2, End: 2, Text: ""},
				{Index: 2, Start: 3, End: 4, Text: "B"},
				{Index: 3, Start: 5, End: 6, Text: "C"},
			},
		},
		{
			name: "trailing delimiters dropped",
			text: "one\ntwo\n\n\n",
			want: []Line{
				{Index: 0, Start: 0, End: 3, Text: "one"},
				{Index: 1, Start: 4, End: 7, Text: "two"},
			},
		},
		{
			name: "utf16 offsets",
			text: "📌x\ny",
			want: []Line{
				{Index: 0, Start: 0, End: 3, Text: "📌x"},
				{Index: 1, Start: 4, End: 5, Text: "y"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplit_Idempotent(t *testing.T) {
	text := "first\n\nsecond\nthird\n"
	if !reflect.DeepEqual(Split(text), Split(text)) {
		t.Error("Split() should be deterministic for the same text")
	}
}

func TestMapLineRange(t *testing.T) {
	lines := Split("A\n\nB\nC")

	tests := []struct {
		name       string
		start, end int
		want       []Anchor
	}{
		{
			name:  "empty line absorbed",
			start: 1, end: 4,
			want: []Anchor{{0, 0, 1}, {2, 3, 1}, {3, 5, 1}},
		},
		{
			name:  "sub range",
			start: 2, end: 3,
			want: []Anchor{{2, 3, 1}},
		},
		{
			name:  "range past end",
			start: 4, end: 10,
			want: []Anchor{{3, 5, 1}},
		},
		{
			name:  "inverted range",
			start: 3, end: 1,
			want: []Anchor{},
		},
		{
			name:  "zero start",
			start: 0, end: 1,
			want: []Anchor{{0, 0, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapLineRange(lines, tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MapLineRange(%d, %d) = %+v, want %+v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestLineAt(t *testing.T) {
	lines := Split("ab\ncd")
	tests := []struct {
		offset int
		want   int
		ok     bool
	}{
		{0, 0, true},
		{2, 0, true},
		{3, 1, true},
		{5, 1, true},
		{9, 0, false},
	}
	for _, tt := range tests {
		l, ok := LineAt(lines, tt.offset)
		if ok != tt.ok || (ok && l.Index != tt.want) {
			t.Errorf("LineAt(%d) = %d,%v want %d,%v", tt.offset, l.Index, ok, tt.want, tt.ok)
		}
	}
}
