package maps

import (
	"errors"
	"fmt"
)

// HTTPError is returned when the backend answers with a non-2xx status.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("map backend %s %s failed: %s", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("map backend %s %s failed: %s, response: %s", e.Method, e.URL, e.Status, string(e.Body))
}

// StatusCode reports the backend status carried by err, or 0 when err did
// not come from a backend response.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// DecodeError is returned when the backend answered 2xx with a body that is
// not JSON.
type DecodeError struct {
	Op  string
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: url=%s: %v", e.Op, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
