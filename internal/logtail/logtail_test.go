package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "folio.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log file: %v", err)
	}
	return path
}

func TestRead_ReturnsTailInOrder(t *testing.T) {
	t.Parallel()

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	path := writeLog(t, content.String())

	tests := []struct {
		name     string
		maxLines int
		want     []string
	}{
		{name: "partial", maxLines: 4, want: all[6:]},
		{name: "exactly all", maxLines: 10, want: all},
		{name: "more than exists", maxLines: 50, want: all},
		{name: "single line", maxLines: 1, want: all[9:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Read() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRead_ZeroOrNegativeMaxLines(t *testing.T) {
	t.Parallel()

	path := writeLog(t, "line 1\nline 2\n")

	for _, maxLines := range []int{0, -1} {
		got, err := Read(path, maxLines)
		if err != nil {
			t.Fatalf("Read(%d) error = %v", maxLines, err)
		}
		if got != nil {
			t.Fatalf("Read(%d) = %v, want nil", maxLines, got)
		}
	}
}

func TestRead_MissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "never-written.log")
	got, err := Read(path, 100)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestRead_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeLog(t, "")
	got, err := Read(path, 100)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestRead_MissingTrailingNewline(t *testing.T) {
	t.Parallel()

	path := writeLog(t, "line 1\nline 2\nline 3")

	got, err := Read(path, 2)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []string{"line 2", "line 3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %v, want %v", got, want)
	}
}

func TestRead_FileLargerThanChunk(t *testing.T) {
	t.Parallel()

	// Enough lines to span several read chunks, so the tail walk has
	// to stop partway through the file and discard the fragment at
	// the front of the first chunk it kept.
	padding := strings.Repeat("x", 200)
	var content strings.Builder
	var all []string
	for i := 0; i < 1000; i++ {
		line := fmt.Sprintf("entry %04d %s", i, padding)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if content.Len() <= chunkSize {
		t.Fatalf("test file is %d bytes, need more than %d", content.Len(), chunkSize)
	}
	path := writeLog(t, content.String())

	got, err := Read(path, 25)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, all[len(all)-25:]) {
		t.Fatalf("Read() returned wrong tail, got %d lines starting with %q", len(got), got[0])
	}
}

func TestRead_LineLongerThanChunk(t *testing.T) {
	t.Parallel()

	long := "big " + strings.Repeat("y", chunkSize)
	path := writeLog(t, "first\n"+long+"\nlast\n")

	got, err := Read(path, 2)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []string{long, "last"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %d lines, want the oversized line then %q", len(got), "last")
	}
}
