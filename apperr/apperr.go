package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries an HTTP status alongside a client-safe message. The wrapped
// cause is for server-side logs only and never reaches the response body.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two *Error values by code, so sentinel-style comparisons like
// errors.Is(err, apperr.NotFound("")) work regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

const (
	CodeValidation     = "validation_error"
	CodeUnauthed       = "authentication_error"
	CodeForbidden      = "authorization_error"
	CodeNotFound       = "not_found"
	CodeUpstream       = "upstream_error"
	CodeProviderPolicy = "provider_policy"
	CodeUnavailable    = "service_unavailable"
)

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: msg}
}

func Unauthenticated(msg string, cause error) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthed, Message: msg, Err: cause}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Code: CodeForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: msg}
}

func Upstream(msg string, cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeUpstream, Message: msg, Err: cause}
}

// ProviderPolicy covers 400-class refusals from a provider, e.g. a content
// safety block on text generation. Distinguished from Upstream so clients
// can tell a policy rejection from an outage.
func ProviderPolicy(msg string, cause error) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeProviderPolicy, Message: msg, Err: cause}
}

func Unavailable(msg string) *Error {
	return &Error{Status: http.StatusServiceUnavailable, Code: CodeUnavailable, Message: msg}
}

// WithStatus overrides the HTTP status while keeping the code, for provider
// failures that map onto specific statuses (model not found, bad API key).
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

// StatusOf extracts the HTTP status for an error, defaulting to 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf extracts the client-safe message for an error. Unknown errors
// collapse to a generic message so upstream detail never leaks.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
