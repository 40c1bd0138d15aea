package boilerplate

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercases", "John SMITH", "john smith"},
		{"collapses_spaces", "Senior    Engineer", "senior engineer"},
		{"collapses_tabs_and_newlines", "a\t\tb\n\nc", "a b c"},
		{"trims", "   Page 2 of 10   ", "page 2 of 10"},
		{"only_whitespace", " \t\r\n ", ""},
		{"nbsp_is_space", "a\u00a0\u00a0b", "a b"},
		{"unit_separator_is_space", "a\x1fb", "a b"},
		{"unicode_letters", "ÉCOLE Polytechnique", "école polytechnique"},
		{"final_sigma", "\u039f\u0394\u039f\u03a3", "\u03bf\u03b4\u03bf\u03c2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"Page 1 of 1",
		"  CONFIDENTIAL\t- Do   Not Share ",
		"İstanbul Üniversitesi",
		"ΟΔΟΣ ΣΟΦΙΑΣ",
		"----  ",
		" Line break",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func FuzzNormalize(f *testing.F) {
	f.Add("")
	f.Add("Page 2 of 10")
	f.Add("  Mixed\tCASE  text \n")
	f.Add("\xff\xfe broken")

	f.Fuzz(func(t *testing.T, s string) {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent: %q -> %q -> %q", s, once, twice)
		}
	})
}
