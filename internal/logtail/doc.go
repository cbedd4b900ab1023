// Package logtail reads the most recent lines from a log file.
//
// # Overview
//
// The logs view shows the tail of folio's own structured log file. This
// package extracts the last N lines from that file without loading the
// whole file into memory, which matters once a long-running session has
// accumulated a large history.
//
// # Reading Log Files
//
// Read walks the file backward from its end in fixed-size chunks and
// stops as soon as enough newlines have been seen:
//
//  1. Stat the file to find its size
//  2. Read a chunk immediately before the current offset
//  3. Prepend it to the accumulated tail
//  4. Repeat until the tail holds more than maxLines newlines or the
//     start of the file is reached
//  5. Split into lines, drop a leading fragment if the walk stopped
//     mid-file, and keep the last maxLines
//
// The cost is proportional to the size of the tail being shown, not to
// the size of the file.
//
// Example usage:
//
//	lines, err := logtail.Read("~/.local/state/folio/folio.log", 500)
//	if err != nil {
//		log.Printf("failed to read log: %v", err)
//	}
//
// # Error Handling
//
// A missing file returns nil, nil: the logger may not have written
// anything yet and the caller simply renders an empty view. Other
// failures (permissions, I/O errors) are returned wrapped.
//
// # Design Rationale
//
// This package is intentionally small:
//   - No streaming or file watching (the UI re-reads on demand)
//   - No log rotation handling (reads the current file only)
//   - No parsing or formatting (that's the logs view's job)
//   - Pure functions with no global state
package logtail
