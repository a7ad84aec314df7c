package seokit

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("seokit error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var de *DateParseError
	if errors.As(err, &de) {
		return EINVALID
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var de *DateParseError
	if errors.As(err, &de) {
		return de.Error()
	}
	return "Internal error"
}

// DateParseError is returned when a sitemap last-modified expression
// cannot be resolved to a timestamp.
type DateParseError struct {
	Expr string
	Err  error
}

func (e *DateParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot parse date expression %q", e.Expr)
	}
	return fmt.Sprintf("cannot parse date expression %q: %v", e.Expr, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
