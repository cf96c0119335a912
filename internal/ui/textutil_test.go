package ui

import "testing"

func TestMaxLineWidth(t *testing.T) {
	lines := []string{"ab", "abcd", "abc"}
	if got := maxLineWidth(lines); got != 4 {
		t.Errorf("maxLineWidth = %d, expected 4", got)
	}

	// Escape sequences carry no visual width.
	styled := []string{"\x1b[31mred\x1b[0m"}
	if got := maxLineWidth(styled); got != 3 {
		t.Errorf("maxLineWidth of styled line = %d, expected 3", got)
	}
}

func TestTruncateTitle(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Drink water", 20, "Drink water"},
		{"Drink water", 7, "Drink …"},
		{"Drink water", 1, "D"},
		{"Drink water", 0, ""},
		{"", 5, ""},
	}
	for _, tc := range cases {
		if got := truncateTitle(tc.in, tc.max); got != tc.want {
			t.Errorf("truncateTitle(%q, %d) = %q, expected %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestExtractShortError(t *testing.T) {
	multi := "constraint failed\nstack line one\nstack line two"
	if got := extractShortError(multi, 40); got != "constraint failed" {
		t.Errorf("extractShortError = %q", got)
	}

	long := "this error message is far too long to fit in a toast"
	got := extractShortError(long, 20)
	if w := maxLineWidth([]string{got}); w > 20 {
		t.Errorf("extractShortError width = %d, expected <= 20", w)
	}

	if got := extractShortError("  padded  ", 40); got != "padded" {
		t.Errorf("extractShortError = %q, expected trimmed text", got)
	}
}
