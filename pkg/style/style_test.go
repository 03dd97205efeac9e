package style

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/yeisme/dcolor/pkg/ansi"
	"github.com/yeisme/dcolor/pkg/palette"
)

func TestPrintPreview(t *testing.T) {
	var buf bytes.Buffer
	res := ansi.New(palette.Classic).Format(ansi.Request{
		Text:  "hello world",
		Span:  ansi.Span{Start: 0, End: 5},
		Style: ansi.Style{Foreground: "#dc322f", Background: "#002b36"},
	})
	if err := PrintPreview(&buf, res.Segments); err != nil {
		t.Fatalf("PrintPreview failed: %v", err)
	}
	out := ansi.Strip(buf.String())
	if !strings.Contains(out, "hello world") {
		t.Errorf("preview should contain the text, got %q", out)
	}
	if !strings.Contains(out, "╭") {
		t.Errorf("preview should be boxed, got %q", out)
	}
}

func TestPrintPreview_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintPreview(&buf, nil); err != nil {
		t.Fatalf("PrintPreview failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty preview should write nothing, got %q", buf.String())
	}
}

func TestPaletteRows(t *testing.T) {
	rows := PaletteRows(lipgloss.NewRenderer(&bytes.Buffer{}), palette.Classic)
	if len(rows) != 16 {
		t.Fatalf("classic rows = %d, want 16", len(rows))
	}
	if rows[7][1] != "white (default)" || rows[7][3] != "37" {
		t.Errorf("unexpected white row: %v", rows[7])
	}
	if rows[8][0] != "background" || rows[8][1] != "firefly dark blue (default)" {
		t.Errorf("unexpected first background row: %v", rows[8])
	}

	if n := len(PaletteRows(lipgloss.NewRenderer(&bytes.Buffer{}), palette.Bright)); n != 15 {
		t.Errorf("bright rows = %d, want 15", n)
	}
}

func TestPrintPalette(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintPalette(&buf, palette.Bright, 100); err != nil {
		t.Fatalf("PrintPalette failed: %v", err)
	}
	out := ansi.Strip(buf.String())
	for _, want := range []string{"BRIGHT", "underline: no", "#4f545c", "90", "HEX"} {
		if !strings.Contains(out, want) {
			t.Errorf("palette output missing %q:\n%s", want, out)
		}
	}
}

func TestSegmentText(t *testing.T) {
	if got := SegmentText("a\nb"); got != "a⏎b" {
		t.Errorf("SegmentText newline = %q", got)
	}
	long := strings.Repeat("色", 40)
	got := SegmentText(long)
	if w := runewidth.StringWidth(got); w > maxSegmentText {
		t.Errorf("width %d exceeds %d", w, maxSegmentText)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated text should end with ellipsis: %q", got)
	}
}

func TestPrintSegments(t *testing.T) {
	var buf bytes.Buffer
	segs := []ansi.Segment{{Text: "hi", Foreground: "#ffffff", Background: "#002b36", Bold: true}}
	if err := PrintSegments(&buf, segs, 0); err != nil {
		t.Fatalf("PrintSegments failed: %v", err)
	}
	out := ansi.Strip(buf.String())
	for _, want := range []string{"TEXT", "hi", "#ffffff", "true"} {
		if !strings.Contains(out, want) {
			t.Errorf("segments output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, "# dcolor\n\nColor **Discord** messages.\n", 80, "notty"); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	out := ansi.Strip(buf.String())
	for _, want := range []string{"dcolor", "Discord"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered markdown missing %q: %q", want, out)
		}
	}
}
