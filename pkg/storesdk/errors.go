package storesdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// ============================================================================
// APIError - backend error responses
// ============================================================================

// APIError represents a non-2xx response from the backend. The backend emits
// three error shapes: a plain detail object, a field-to-messages validation
// map, and a normalized envelope with an errors list. All three parse into
// this one type.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Detail is a human-readable description of the error.
	Detail string

	// Fields maps field names to validation messages, when the backend
	// returned field-level errors. Nil otherwise.
	Fields map[string][]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)

		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, name+": "+strings.Join(e.Fields[name], "; "))
		}
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

// IsAuthorization reports whether the error is an authorization failure (401).
func (e *APIError) IsAuthorization() bool { return e.StatusCode == http.StatusUnauthorized }

// IsForbidden reports whether the error is a role/permission denial (403).
func (e *APIError) IsForbidden() bool { return e.StatusCode == http.StatusForbidden }

// IsValidation reports whether the error is a 4xx with field-level messages.
func (e *APIError) IsValidation() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && len(e.Fields) > 0
}

// IsServer reports whether the error is a 5xx server failure.
func (e *APIError) IsServer() bool { return e.StatusCode >= 500 }

// ============================================================================
// Error predicates
// ============================================================================

// IsAuthorizationError reports whether err is an APIError with HTTP 401.
func IsAuthorizationError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsAuthorization()
}

// IsNetworkError reports whether err is a transport-level failure (connection
// refused, DNS, timeout). Network failures never carry a status code and
// never trigger refresh logic.
func IsNetworkError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// ============================================================================
// Response parsing
// ============================================================================

// parseAPIError builds a typed APIError from an error response body. The
// body is attempted against each known backend error shape in turn; an
// unrecognisable body falls back to the HTTP status text.
func parseAPIError(statusCode int, body []byte) *APIError {
	// Shape 1: {"detail": "..."}
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return &APIError{StatusCode: statusCode, Detail: detail.Detail}
	}

	// Shape 2: normalized envelope {"ok":false,"errors":[...],"status_code":N}
	var envelope struct {
		OK     *bool    `json:"ok"`
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.OK != nil && !*envelope.OK {
		if len(envelope.Errors) > 0 {
			return &APIError{StatusCode: statusCode, Detail: strings.Join(envelope.Errors, "; ")}
		}
		if envelope.Error != "" {
			return &APIError{StatusCode: statusCode, Detail: envelope.Error}
		}
	}

	// Shape 3: validation map {"field": ["msg", ...]}
	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		return &APIError{
			StatusCode: statusCode,
			Detail:     "validation failed",
			Fields:     fields,
		}
	}

	return &APIError{
		StatusCode: statusCode,
		Detail:     http.StatusText(statusCode),
	}
}
