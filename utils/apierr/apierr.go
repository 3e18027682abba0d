package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeValidation      = "VALIDATION_ERROR"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "SERVER_ERROR"
	CodeUpstream        = "UPSTREAM_ERROR"
	CodeAlreadyEnrolled = "ALREADY_ENROLLED"
)

// Error carries an HTTP status and a stable code from the service layer to the handlers.
type Error struct {
	Status int
	Code   string
	Err    error
	Fields map[string]string // per-field messages for validation failures
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Unauthorized(msg string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, errors.New(msg))
}

func Forbidden(msg string) *Error {
	return New(http.StatusForbidden, CodeForbidden, errors.New(msg))
}

func NotFound(msg string) *Error {
	return New(http.StatusNotFound, CodeNotFound, errors.New(msg))
}

func Conflict(code, msg string) *Error {
	return New(http.StatusConflict, code, errors.New(msg))
}

func Validation(msg string, fields map[string]string) *Error {
	e := New(http.StatusBadRequest, CodeValidation, errors.New(msg))
	e.Fields = fields
	return e
}

// Internal hides the cause from clients; the cause stays reachable through Unwrap.
func Internal(err error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, err)
}

func Upstream(err error) *Error {
	return New(http.StatusBadGateway, CodeUpstream, err)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	e, ok := As(err)
	return ok && e.Code == code
}
