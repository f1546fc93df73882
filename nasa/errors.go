package nasa

import (
	"errors"
	"fmt"
)

// APIError is returned when the API answers with a non-success status. Reason
// carries the API's own explanation.
type APIError struct {
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Reason, e.StatusCode)
}

// Reason extracts the API reason from err, or "" when err did not come from
// an error status.
func Reason(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Reason
	}
	return ""
}
