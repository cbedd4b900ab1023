package ui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatLogLine(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()

	line := `{"level":"debug","component":"api","url":"https://example.com/api","time":"2026-08-25T10:30:00Z","message":"page fetched"}`
	got := formatLogLine(styles, line)

	wantTime := mustParseRFC3339(t, "2026-08-25T10:30:00Z").In(time.Local).Format("15:04:05")
	for _, want := range []string{wantTime, "DEBUG", "[api]", "page fetched", "url=https://example.com/api"} {
		if !strings.Contains(got, want) {
			t.Fatalf("formatLogLine = %q, want it to contain %q", got, want)
		}
	}
}

func TestFormatLogLine_ExtrasAreSorted(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()

	line := `{"level":"info","message":"settled","phase":"ready","entities":3}`
	got := formatLogLine(styles, line)

	entIdx := strings.Index(got, "entities=3")
	phaseIdx := strings.Index(got, "phase=ready")
	if entIdx < 0 || phaseIdx < 0 {
		t.Fatalf("formatLogLine = %q, want extras present", got)
	}
	if entIdx > phaseIdx {
		t.Fatalf("extras out of order in %q", got)
	}
}

func TestFormatLogLine_NonJSONPassesThrough(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()

	line := "plain text line"
	if got := formatLogLine(styles, line); !strings.Contains(got, "plain text line") {
		t.Fatalf("formatLogLine = %q, want passthrough", got)
	}

	broken := `{"level":"info",`
	if got := formatLogLine(styles, broken); !strings.Contains(got, broken) {
		t.Fatalf("formatLogLine = %q, want malformed line verbatim", got)
	}
}

func TestFormatLogLine_DefaultsLevelToInfo(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()

	got := formatLogLine(styles, `{"message":"hello"}`)
	if !strings.Contains(got, "INFO") {
		t.Fatalf("formatLogLine = %q, want INFO default", got)
	}
}

func mustParseRFC3339(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}
