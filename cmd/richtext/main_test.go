package main

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riverfjs/richtext-go"
)

func TestParseSpanArg(t *testing.T) {
	tests := []struct {
		in      string
		want    SpanArg
		wantErr bool
	}{
		{in: "0:5:bold", want: SpanArg{Start: 0, End: 5, Kind: "bold"}},
		{in: "1:4:FG:#ff0000", want: SpanArg{Start: 1, End: 4, Kind: "fg", Arg: "#ff0000"}},
		{in: "0:2:link:https://go.dev/a:b", want: SpanArg{Start: 0, End: 2, Kind: "link", Arg: "https://go.dev/a:b"}},
		{in: "0:5", wantErr: true},
		{in: "x:5:bold", wantErr: true},
		{in: "0:y:bold", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpanArg(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSpanArg(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSpanArg(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLineRange(t *testing.T) {
	if a, b, err := ParseLineRange("2:7"); err != nil || a != 2 || b != 7 {
		t.Errorf("ParseLineRange(2:7) = %d, %d, %v", a, b, err)
	}
	if a, b, err := ParseLineRange("3"); err != nil || a != 3 || b != 3 {
		t.Errorf("ParseLineRange(3) = %d, %d, %v", a, b, err)
	}
	if _, _, err := ParseLineRange("a:b"); err == nil {
		t.Error("ParseLineRange(a:b) should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#ff8000", color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, true},
		{"0f0", color.NRGBA{G: 0xff, A: 0xff}, true},
		{"#12345", color.NRGBA{}, false},
		{"#gggggg", color.NRGBA{}, false},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func writeInput(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSourceFlags_Load(t *testing.T) {
	f := SourceFlags{
		Input:    writeInput(t, "A\n\nB\nC\n"),
		Spans:    []string{"0:1:bold", "3:4:fg:#00ff00", "5:6:link:https://example.com", "0:1:fade:1s"},
		Numbers:  []string{"1:4"},
		TextSize: 18,
		Timeout:  time.Second,
	}
	c := 0
	v, err := f.Load(richtext.WithInvalidate(func() { c++ }))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v.Text() != "A\n\nB\nC" {
		t.Errorf("Text() = %q", v.Text())
	}
	if v.Config().TextSize != 18 {
		t.Errorf("TextSize = %v, want 18", v.Config().TextSize)
	}

	info := Inspect(v)
	if len(info.Spans) != 7 {
		t.Fatalf("Inspect() spans = %+v, want 7", info.Spans)
	}
	wantDetails := []string{"bold", "fg:#00ff00", "https://example.com"}
	for i, want := range wantDetails {
		if info.Spans[i].Detail != want {
			t.Errorf("span %d detail = %q, want %q", i, info.Spans[i].Detail, want)
		}
	}
	if info.Spans[4].Detail != "number 1." || info.Spans[6].Start != 5 || info.Spans[6].Detail != "number 3." {
		t.Errorf("decorations = %+v", info.Spans[4:])
	}
}

func TestSourceFlags_LoadErrors(t *testing.T) {
	tests := []SourceFlags{
		{Input: filepath.Join(t.TempDir(), "missing.txt")},
		{Input: writeInput(t, "abc"), Spans: []string{"0:9:bold"}},
		{Input: writeInput(t, "abc"), Spans: []string{"0:1:sparkle"}},
		{Input: writeInput(t, "abc"), Numbers: []string{"x"}},
	}
	for i, f := range tests {
		if _, err := f.Load(); err == nil {
			t.Errorf("case %d: Load() should fail", i)
		}
	}
}

func TestSourceFlags_Markdown(t *testing.T) {
	f := SourceFlags{Input: writeInput(t, "- one\n- two\n"), Markdown: true, Timeout: time.Second}
	v, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if v.Text() != "one\ntwo" || len(v.QuerySpans(richtext.KindDecoration)) != 2 {
		t.Errorf("markdown view = %q with %d decorations", v.Text(), len(v.QuerySpans(richtext.KindDecoration)))
	}
}

func TestPreviewModel_ReloadStdin(t *testing.T) {
	f := SourceFlags{Input: "-", stdin: strings.NewReader("from stdin\n"), Timeout: time.Second}
	m, err := newPreviewModel(f.Load)
	if err != nil {
		t.Fatal(err)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.status != "reloaded" {
		t.Fatalf("status = %q", m.status)
	}
	if got := m.view.Text(); got != "from stdin" {
		t.Errorf("Text() after reload = %q, want %q", got, "from stdin")
	}
}

func TestPreviewModel(t *testing.T) {
	f := SourceFlags{Input: writeInput(t, "fade"), Spans: []string{"0:4:fade:100ms"}, Timeout: time.Second}
	m, err := newPreviewModel(f.Load)
	if err != nil {
		t.Fatal(err)
	}
	if m.Init() == nil {
		t.Fatal("Init() should schedule a tick")
	}

	_, cmd := m.Update(tickMsg(time.Now().Add(time.Hour)))
	if cmd != nil || m.playing {
		t.Error("finished fades should stop ticking")
	}
	if m.redraws == 0 {
		t.Error("ticks should request redraws")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd == nil || !m.playing || m.status != "reloaded" {
		t.Errorf("replay: playing=%v status=%q", m.playing, m.status)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
	if m.View() == "" {
		t.Error("View() should not be empty")
	}
}
