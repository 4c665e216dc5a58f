package ipquery

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAddresses is returned by QueryBulk when called with an
	// empty address list.
	ErrNoAddresses = errors.New("no addresses to query")
)

// NetworkError reports an HTTP exchange that could not be established
// or completed: DNS failure, connection refused, timeout, TLS failure
// or a failed body read. The client never retries; the error is
// surfaced to the caller as-is.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError reports a completed HTTP exchange whose body did not
// match the expected schema: malformed JSON, a type mismatch, a
// missing ip field, or a self-IP body that is not an IP address.
// Body holds the raw response for debugging.
type DecodeError struct {
	URL    string
	Status int
	Body   []byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response from %s (HTTP %d): %v", e.URL, e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
