package websummary

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The codes map the failure taxonomy of a summarization request:
// EINVALID covers malformed user input, EUNAVAILABLE covers upstream
// retrieval and model failures, EUNAUTHORIZED and ERATELIMIT cover the
// hosted API's credential and quota errors, and ENOTIMPLEMENTED marks a
// "method not found" style mismatch between invocation styles of the
// hosted API (the only error that triggers a fallback).
const (
	EINVALID        = "invalid"
	EINTERNAL       = "internal"
	ENOTFOUND       = "not_found"
	ENOTIMPLEMENTED = "not_implemented"
	ERATELIMIT      = "rate_limit"
	EUNAUTHORIZED   = "unauthorized"
	EUNAVAILABLE    = "unavailable"
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description safe to show to the user.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise; mostly for test and debug output.
func (e *Error) Error() string {
	return fmt.Sprintf("websummary error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
