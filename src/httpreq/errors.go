package httpreq

import (
	"errors"
	"fmt"
	"strings"
)

// StatusError is returned when the upstream answers with a non-2xx status.
type StatusError struct {
	Method     string
	Url        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Url, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Url, e.StatusCode, e.Body)
}

// DecodeError is returned when a 2xx body cannot be decoded into the requested type.
type DecodeError struct {
	Url string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.Url, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
