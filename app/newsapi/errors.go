package newsapi

import (
	"errors"
	"fmt"
)

// ErrDecode marks a response body that could not be decoded.
var ErrDecode = errors.New("malformed response body")

// StatusError is returned for any non-2xx response, regardless of body.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

// IsStatus reports whether err carries a non-2xx response.
func IsStatus(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
