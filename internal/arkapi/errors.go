package arkapi

import "fmt"

// APIError is the service's native failure, carrying the remote error
// code and human-readable message. Callers inspect Message to classify
// failures (the rate-limit retry rule matches on message text), so the
// message is preserved verbatim.
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("ark api: %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("ark api: %s", e.Message)
}
