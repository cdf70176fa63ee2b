package bigdata

import (
	"fmt"
	"strings"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
)

// maxErrorBody caps how much of a response body is echoed into errors.
const maxErrorBody = 512

// StatusError reports a non-2xx API response.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("bigdata: %s %s returned status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("bigdata: %s %s returned status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// Unwrap maps a 404 onto domain.ErrNotFound so callers can test for it.
func (e *StatusError) Unwrap() error {
	if e.Status == 404 {
		return domain.ErrNotFound
	}
	return nil
}

func newStatusError(method, path string, status int, body []byte) *StatusError {
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody] + "..."
	}
	return &StatusError{
		Method: method,
		Path:   path,
		Status: status,
		Body:   text,
	}
}
