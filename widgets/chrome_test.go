package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func plain(s string) string { return ansi.Strip(s) }

func TestChromeRenderShape(t *testing.T) {
	out := plain(Chrome{Title: "Status", Content: "one\ntwo"}.Render(30))
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want 4 (border + 2 content)", len(lines))
	}
	if !strings.Contains(lines[0], "Status") {
		t.Errorf("top border missing title: %q", lines[0])
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
}

func TestChromeTruncatesLongContent(t *testing.T) {
	long := strings.Repeat("x", 100)
	out := plain(Chrome{Title: "T", Content: long}.Render(20))
	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 20 {
			t.Errorf("line %d width = %d, want <= 20", i, w)
		}
	}
}

func TestChromeZeroWidth(t *testing.T) {
	if out := (Chrome{Title: "T"}).Render(0); out != "" {
		t.Fatalf("Render(0) = %q, want empty", out)
	}
}

func TestChromeSelectedMarker(t *testing.T) {
	out := plain(Chrome{Title: "T", Selected: true}.Render(20))
	if !strings.Contains(out, "▶") {
		t.Error("selected chrome should carry the cursor marker")
	}
}
