package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNetwork wraps transport-level failures (connection refused, timeout).
// Callers surface these as a generic failure, never as a validation error.
var ErrNetwork = errors.New("network error")

// ErrNoRefreshToken is returned when a 401 cannot be retried because no
// refresh token is stored.
var ErrNoRefreshToken = errors.New("no refresh token available")

// Error is a backend error normalized once at the client boundary.
type Error struct {
	StatusCode int
	// Detail is the backend's top-level message, when present.
	Detail string
	// Fields holds per-field validation messages keyed by field name.
	Fields map[string][]string
}

// Error renders a single human-readable message: the detail if the backend
// sent one, otherwise the field errors joined in a stable order.
func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var parts []string
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
		}
		return strings.Join(parts, ", ")
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }
func (e *Error) IsForbidden() bool    { return e.StatusCode == http.StatusForbidden }
func (e *Error) IsNotFound() bool     { return e.StatusCode == http.StatusNotFound }
func (e *Error) IsValidation() bool   { return e.StatusCode == http.StatusBadRequest }

// AsError extracts a normalized backend error from err, if there is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a backend 404. Pages render these as an
// in-page "not found" state rather than a failure.
func IsNotFound(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.IsNotFound()
}

// parseError builds an *Error from a non-2xx response body. The backend
// answers either {"detail": "..."}, {"message": "..."}, or a map of field
// names to message lists; anything else falls back to the status text.
func parseError(statusCode int, body []byte) *Error {
	e := &Error{StatusCode: statusCode}

	var envelope struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Detail != "" {
			e.Detail = envelope.Detail
			return e
		}
		if envelope.Message != "" {
			e.Detail = envelope.Message
			return e
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		e.Fields = make(map[string][]string, len(fields))
		for name, raw := range fields {
			var list []string
			if err := json.Unmarshal(raw, &list); err == nil {
				e.Fields[name] = list
				continue
			}
			var single string
			if err := json.Unmarshal(raw, &single); err == nil {
				e.Fields[name] = []string{single}
			}
		}
		if len(e.Fields) > 0 {
			return e
		}
	}

	return e
}
