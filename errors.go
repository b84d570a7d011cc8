package cpl

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for every failure class the SDK can surface. Callers
// branch with errors.Is; the carrier types below add per-failure context
// and are reachable with errors.As.
var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrMalformedResponse = errors.New("malformed response")
	ErrNotFound          = errors.New("resource not found")
	ErrRateLimited       = errors.New("rate limited")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrServer            = errors.New("upstream server error")
	ErrTransport         = errors.New("transport failure")
	ErrClientClosed      = errors.New("client is closed")
)

// RateLimitError reports a 429 from the feeds. RetryAfter is zero when the
// response carried no usable Retry-After header.
type RateLimitError struct {
	Op         string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s: rate limited, retry after %s", e.Op, e.RetryAfter)
	}
	return fmt.Sprintf("%s: rate limited", e.Op)
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// MalformedResponseError reports a 2xx body the decoder could not turn into
// a complete entity. Field names the offending feed field when known.
type MalformedResponseError struct {
	Op    string
	Field string
	Cause error
}

func (e *MalformedResponseError) Error() string {
	switch {
	case e.Field != "" && e.Cause != nil:
		return fmt.Sprintf("%s: malformed response: field %q: %v", e.Op, e.Field, e.Cause)
	case e.Field != "":
		return fmt.Sprintf("%s: malformed response: field %q", e.Op, e.Field)
	case e.Cause != nil:
		return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: malformed response", e.Op)
}

func (e *MalformedResponseError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrMalformedResponse, e.Cause}
	}
	return []error{ErrMalformedResponse}
}

// StatusError reports a non-2xx status. Body holds an abbreviated copy of
// the response payload for diagnostics.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: feed status=%d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: feed status=%d body=%s", e.Op, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	switch {
	case e.StatusCode == 404:
		return ErrNotFound
	case e.StatusCode == 401 || e.StatusCode == 403:
		return ErrUnauthorized
	case e.StatusCode >= 500:
		return ErrServer
	}
	return nil
}
