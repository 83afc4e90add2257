package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrTransport indicates the request never produced a usable response:
	// the network was unreachable, the request could not be built, or the
	// response body was malformed.
	ErrTransport = errors.New("apiclient.transport")

	// ErrUnauthenticated matches any *Error with status 401. The client
	// only classifies; deciding between refresh and logout is session
	// policy and lives in the auth service.
	ErrUnauthenticated = errors.New("apiclient.unauthenticated")

	// ErrServer matches any *Error with a 5xx status.
	ErrServer = errors.New("apiclient.server_error")
)

// Error is the normalized form of every non-2xx API response. Code carries
// the machine-readable error code from the response body when the API
// provided one (e.g. "INVALID_CREDENTIALS", "EMAIL_EXISTS"), otherwise a
// key derived from the HTTP status.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("apiclient: %s: %s (status %d)", e.Code, e.Message, e.Status)
}

// Is lets callers classify by sentinel without inspecting the status code
// themselves: errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrServer).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthenticated:
		return e.Status == http.StatusUnauthorized
	case ErrServer:
		return e.Status >= 500
	}
	return false
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// newError builds an *Error from a non-2xx response. A structured JSON body
// wins; anything else falls back to a status-derived code so callers always
// get a typed error, never a raw body.
func newError(status int, body []byte) *Error {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && (parsed.Code != "" || parsed.Message != "") {
		if parsed.Code == "" {
			parsed.Code = statusKey(status)
		}
		return &Error{
			Status:  status,
			Code:    parsed.Code,
			Message: parsed.Message,
			Details: parsed.Details,
		}
	}

	return &Error{
		Status:  status,
		Code:    statusKey(status),
		Message: http.StatusText(status),
	}
}

// statusKey derives a stable snake_case key from an HTTP status, e.g.
// 422 -> "unprocessable_entity".
func statusKey(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return fmt.Sprintf("http_%d", status)
	}
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, " ", "_")
	return strings.ReplaceAll(text, "-", "_")
}
