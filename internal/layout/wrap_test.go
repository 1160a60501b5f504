package layout

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// runeMetrics measures 10px per rune plus stroke inflation on each side.
type runeMetrics struct{}

func (runeMetrics) Measure(text string, strokeWidth int) (int, int) {
	return utf8.RuneCountInString(text)*10 + strokeWidth*2, 20
}

func TestWrapSingleLine(t *testing.T) {
	lines, err := Wrap("short text", runeMetrics{}, 500, 0)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "short text" {
		t.Errorf("line text = %q", lines[0].Text)
	}
	if lines[0].Width != 100 || lines[0].Height != 20 {
		t.Errorf("line geometry = %dx%d", lines[0].Width, lines[0].Height)
	}
}

func TestWrapBreaksAtWordBoundary(t *testing.T) {
	// "hello world" is 11 runes = 110px; adding " again" overflows 115px.
	lines, err := Wrap("hello world again", runeMetrics{}, 115, 0)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(lines), lines)
	}
	if lines[0].Text != "hello world" || lines[1].Text != "again" {
		t.Errorf("lines = %q, %q", lines[0].Text, lines[1].Text)
	}
	for i, line := range lines {
		if line.Width > 115 {
			t.Errorf("line %d width %d exceeds max", i, line.Width)
		}
	}
}

func TestWrapOversizedWord(t *testing.T) {
	lines, err := Wrap("tiny incomprehensibilities end", runeMetrics{}, 100, 0)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %+v", len(lines), lines)
	}
	if !lines[1].Overflow {
		t.Error("middle line should be flagged as overflow")
	}
	if lines[1].Text != "incomprehensibilities" {
		t.Errorf("overflow line = %q", lines[1].Text)
	}
	if lines[0].Overflow || lines[2].Overflow {
		t.Error("fitting lines must not be flagged")
	}
}

func TestWrapStrokeInflationCounts(t *testing.T) {
	// 9 runes = 90px bare; stroke 10 adds 20px and forces a break at 100.
	lines, err := Wrap("four four", runeMetrics{}, 100, 10)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected stroke width to force 2 lines, got %d", len(lines))
	}
}

func TestWrapIdempotent(t *testing.T) {
	const text = "the quick brown fox jumps over the lazy dog near the river bank"
	first, err := Wrap(text, runeMetrics{}, 200, 2)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	var texts []string
	for _, line := range first {
		texts = append(texts, line.Logical)
	}
	second, err := Wrap(strings.Join(texts, " "), runeMetrics{}, 200, 2)
	if err != nil {
		t.Fatalf("rewrap: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("rewrap produced %d lines, want %d", len(second), len(first))
	}
	for i := range first {
		if second[i].Text != first[i].Text {
			t.Errorf("line %d: %q != %q", i, second[i].Text, first[i].Text)
		}
	}
}

func TestWrapIdempotentHebrew(t *testing.T) {
	// Two lines at 100px: 9 runes each fit, adding the third word overflows.
	first, err := Wrap("שלום עולם טוב מאוד", runeMetrics{}, 100, 0)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(first), first)
	}
	if first[0].Text != "םלוע םולש" || first[1].Text != "דואמ בוט" {
		t.Errorf("visual lines = %q, %q", first[0].Text, first[1].Text)
	}
	if first[0].Logical != "שלום עולם" || first[1].Logical != "טוב מאוד" {
		t.Errorf("logical lines = %q, %q", first[0].Logical, first[1].Logical)
	}

	var texts []string
	for _, line := range first {
		texts = append(texts, line.Logical)
	}
	second, err := Wrap(strings.Join(texts, " "), runeMetrics{}, 100, 0)
	if err != nil {
		t.Fatalf("rewrap: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("rewrap produced %d lines, want %d", len(second), len(first))
	}
	for i := range first {
		if second[i].Text != first[i].Text || second[i].Logical != first[i].Logical {
			t.Errorf("line %d: (%q, %q) != (%q, %q)",
				i, second[i].Text, second[i].Logical, first[i].Text, first[i].Logical)
		}
	}
}

func TestWrapEmptyAndInvalid(t *testing.T) {
	if lines, err := Wrap("   ", runeMetrics{}, 100, 0); err != nil || lines != nil {
		t.Errorf("blank input: lines=%v err=%v", lines, err)
	}
	if _, err := Wrap("text", nil, 100, 0); err == nil {
		t.Error("nil metrics: expected error")
	}
	if _, err := Wrap("text", runeMetrics{}, 0, 0); err == nil {
		t.Error("zero width: expected error")
	}
}

func TestWrapHebrewSingleLine(t *testing.T) {
	lines, err := Wrap("שלום", runeMetrics{}, 500, 0)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "םולש" {
		t.Errorf("visual text = %q, want reversed glyph order", lines[0].Text)
	}
}

func TestVisualOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain ascii", "plain ascii"},
		{"שלום", "םולש"},
		{"שלום עולם", "םלוע םולש"},
	}
	for _, tc := range tests {
		if got := VisualOrder(tc.input); got != tc.expected {
			t.Errorf("VisualOrder(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestHasRTL(t *testing.T) {
	if HasRTL("hello") {
		t.Error("ascii flagged as RTL")
	}
	if !HasRTL("שלום") {
		t.Error("hebrew not flagged as RTL")
	}
	if !HasRTL("hello שלום") {
		t.Error("mixed text not flagged as RTL")
	}
}
