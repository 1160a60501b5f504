package language

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		code string
		name string
		rtl  bool
	}{
		{"he", "Hebrew", true},
		{"ar", "Arabic", true},
		{"en", "English", false},
		{"en-US", "American English", false},
		{"zh", "Chinese", false},
	}
	for _, tc := range tests {
		info, err := Parse(tc.code)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.code, err)
			continue
		}
		if info.Name != tc.name {
			t.Errorf("Parse(%q).Name = %q, want %q", tc.code, info.Name, tc.name)
		}
		if info.RTL != tc.rtl {
			t.Errorf("Parse(%q).RTL = %v, want %v", tc.code, info.RTL, tc.rtl)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, code := range []string{"", "   ", "not-a-language-code-at-all!!"} {
		if _, err := Parse(code); err == nil {
			t.Errorf("Parse(%q): expected error", code)
		}
	}
}

func TestProbe(t *testing.T) {
	hebrew, err := Parse("he")
	if err != nil {
		t.Fatalf("Parse(he): %v", err)
	}
	if hebrew.Probe() != "שלום" {
		t.Errorf("hebrew probe = %q", hebrew.Probe())
	}

	english, err := Parse("en")
	if err != nil {
		t.Fatalf("Parse(en): %v", err)
	}
	if english.Probe() != "Ag" {
		t.Errorf("english probe = %q", english.Probe())
	}
}

func TestCode(t *testing.T) {
	info, err := Parse("he-IL")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if info.Code() != "he" {
		t.Errorf("Code = %q, want he", info.Code())
	}
}
