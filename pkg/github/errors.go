package github

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors classifying every failure this package returns.
// Match them with [errors.Is]; use [errors.As] with the concrete types
// below to inspect details such as the HTTP status code.
var (
	// ErrRequest is matched by transport failures (connection, DNS, TLS).
	ErrRequest = errors.New("request failed")

	// ErrStatus is matched by non-2xx API responses.
	ErrStatus = errors.New("non-success status")

	// ErrDecode is matched by malformed or schema-incompatible response bodies.
	ErrDecode = errors.New("malformed response")

	// ErrNotFound narrows ErrStatus to 404 responses.
	ErrNotFound = errors.New("repository not found")
)

// RequestError wraps a transport-level failure. The cause is preserved
// through Unwrap, so context cancellation stays detectable with
// errors.Is(err, context.Canceled).
type RequestError struct{ Err error }

func (e *RequestError) Error() string { return "send request: " + e.Err.Error() }
func (e *RequestError) Unwrap() error { return e.Err }

// Is matches ErrRequest.
func (e *RequestError) Is(target error) bool { return target == ErrRequest }

// StatusError reports a non-2xx response from the GitHub API.
type StatusError struct {
	StatusCode int    // numeric status, e.g. 404
	Status     string // status line, e.g. "404 Not Found"
	Message    string // message from the JSON error body, if the API sent one
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("GitHub API error (%s): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("GitHub API error (%s)", e.Status)
}

// Is matches ErrStatus for any status, and additionally ErrNotFound for 404.
func (e *StatusError) Is(target error) bool {
	if target == ErrStatus {
		return true
	}
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// DecodeError wraps a failure to decode the response body.
type DecodeError struct{ Err error }

func (e *DecodeError) Error() string { return "decode response: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// Is matches ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
