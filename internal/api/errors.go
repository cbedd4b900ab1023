package api

import (
	"errors"
	"fmt"
)

// Kind classifies a page fetch failure.
type Kind string

const (
	// KindNetwork covers transport-level failures: DNS errors, refused
	// connections, timeouts, cancelled contexts. No usable response arrived.
	KindNetwork Kind = "network"

	// KindHTTP covers responses carrying a non-2xx status code.
	KindHTTP Kind = "http"

	// KindDecode covers 2xx responses whose body does not decode into the
	// pagination envelope.
	KindDecode Kind = "decode"
)

// Error is a classified page fetch failure. Every failure returned by
// Client.FetchPage is an *Error and carries exactly one Kind.
type Error struct {
	Kind       Kind
	StatusCode int // set when Kind is KindHTTP
	URL        string
	Err        error // underlying cause; nil for plain HTTP status failures
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts a classified fetch error from an error chain.
func AsError(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
