package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// fallbackMessage is used when neither the server payload nor the HTTP
// status text offers anything human-readable.
const fallbackMessage = "request failed"

// APIError is the uniform envelope for any failed call. Status is the HTTP
// status code, or 0 when the request never completed. Details carries the raw
// response payload, if any, for diagnostics.
type APIError struct {
	Status  int
	Message string
	Details json.RawMessage

	cause error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("apiclient: %s", e.Message)
	}
	return fmt.Sprintf("apiclient: %d %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// AsAPIError unwraps err into the envelope, if it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an API error with the given status code.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == status
}

// IsAuthError reports whether err is a 401 or 403 response. The session
// manager retries exactly these during background identity verification.
func IsAuthError(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// transportError builds the envelope for a request that never completed:
// generic message, no status, cause preserved for unwrapping.
func transportError(err error) *APIError {
	return &APIError{Message: fallbackMessage, cause: err}
}

// statusError builds the envelope for a non-2xx response. The server's
// "message" field wins; the HTTP status text is the fallback.
func statusError(status int, payload json.RawMessage) *APIError {
	message := ""
	if len(payload) > 0 {
		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(payload, &body); err == nil {
			message = body.Message
		}
	}
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = fallbackMessage
	}
	return &APIError{Status: status, Message: message, Details: payload}
}
