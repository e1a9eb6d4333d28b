package api

import (
	"errors"
	"fmt"
)

// Failure categories surfaced by the resource client. Callers branch on them with errors.Is.
var (
	ErrTransport       = errors.New("transport failure")
	ErrRequestRejected = errors.New("request rejected")
)

// TransportError covers everything between building the request and decoding the body:
// dial failures, timeouts, cancellations and undecodable payloads.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, ErrTransport, e.Err)
}

// Unwrap exposes both the category and the underlying cause (e.g. context.Canceled).
func (e *TransportError) Unwrap() []error { return []error{ErrTransport, e.Err} }

// RequestError is a non-2xx answer from the service. The body is kept verbatim
// for diagnostics and never interpreted.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %s with status %d", e.Method, e.Path, ErrRequestRejected, e.StatusCode)
}

func (e *RequestError) Unwrap() error { return ErrRequestRejected }

// StatusCode extracts the HTTP status of a rejected request, or 0 if err is not one.
func StatusCode(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}
