package logtail

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// chunkSize is how many bytes are read per step while walking a log
// file backward from its end. Plenty for typical structured log lines.
const chunkSize = 32 * 1024

// Read returns up to maxLines of the most recent lines from the log
// file at path, oldest first.
//
// A missing file is not an error: the logger may not have written
// anything yet, so Read returns no lines and lets the caller render an
// empty view. maxLines <= 0 also returns nothing.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log file: %w", err)
	}

	// Walk backward from the end in fixed-size chunks, accumulating
	// until enough newlines are in hand or the start of the file is
	// reached. Avoids scanning a long history to show a short tail.
	offset := info.Size()
	var tail []byte
	for offset > 0 && lineCount(tail) <= maxLines {
		step := int64(chunkSize)
		if offset < step {
			step = offset
		}
		offset -= step

		chunk := make([]byte, step)
		if _, err := file.ReadAt(chunk, offset); err != nil {
			return nil, fmt.Errorf("read log file: %w", err)
		}
		tail = append(chunk, tail...)
	}

	lines := splitLines(tail)
	if offset > 0 && len(lines) > 0 {
		// The first line is a fragment whose head was never read.
		lines = lines[1:]
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines, nil
}

func lineCount(buf []byte) int {
	n := 0
	for _, b := range buf {
		if b == '\n' {
			n++
		}
	}
	return n
}

func splitLines(buf []byte) []string {
	text := strings.TrimRight(string(buf), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
