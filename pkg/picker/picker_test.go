package picker

import (
	"strings"
	"testing"

	"github.com/yeisme/dcolor/pkg/palette"
)

func TestLabel(t *testing.T) {
	got := Label(palette.Entry{Name: "red", Hex: "#dc322f", Code: "31"})
	if !strings.HasPrefix(got, "red ") || !strings.HasSuffix(got, "#dc322f  (31)") {
		t.Errorf("unexpected label %q", got)
	}
}

func TestFuzzy_NoEntries(t *testing.T) {
	if _, err := Fuzzy(palette.Foreground, nil); err == nil {
		t.Fatal("expected error for empty entries")
	}
}
