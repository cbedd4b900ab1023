package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"tiny_limit", "hello", 2, "he"},
		{"zero_limit", "hello", 0, "hello"},
		{"trims_whitespace", "  hello  ", 10, "hello"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := truncate(tc.in, tc.limit)
			if got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("https://example.com/api/character", 20)
	if len([]rune(got)) > 20 {
		t.Fatalf("got %q (%d runes), want <=20", got, len([]rune(got)))
	}
	if got == "https://example.com/api/character" {
		t.Fatalf("expected truncation")
	}
	// Both ends survive
	if got[:3] != "htt" {
		t.Fatalf("got %q, want the start preserved", got)
	}
	if got[len(got)-4:] != "cter" {
		t.Fatalf("got %q, want the end preserved", got)
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ready", "Ready"},
		{"initial-loading", "Initial Loading"},
		{"incremental-loading", "Incremental Loading"},
		{"snake_case", "Snake Case"},
		{"", ""},
		{"  idle  ", "Idle"},
	}
	for _, tc := range cases {
		if got := titleCase(tc.in); got != tc.want {
			t.Fatalf("titleCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("padRight should not shorten, got %q", got)
	}
	if got := padRight("ab", 0); got != "ab" {
		t.Fatalf("padRight zero width = %q, want ab", got)
	}
}
