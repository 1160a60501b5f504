package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"clip.mp4", "clip.mp4"},
		{"a/b\\c:d", "a-b-c-d"},
		{"what?.mp4", "what.mp4"},
		{"  spaced  ", "spaced"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := SanitizeFileName(tc.input); got != tc.expected {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("short string changed: %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello..." {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("שלום עולם", 4); got != "שלום..." {
		t.Errorf("rune truncation = %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("zero limit = %q", got)
	}
}
