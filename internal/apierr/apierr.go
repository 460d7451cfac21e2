// Package apierr is the error taxonomy every handler maps results through:
// invalid input, missing identity, missing entity, or an unexpected storage
// failure. Anything that is not an *Error is treated as Internal.
package apierr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func BadRequest(message string) *Error {
	return &Error{Code: fiber.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Code: fiber.StatusUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: fiber.StatusNotFound, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Code: fiber.StatusInternalServerError, Message: message, Err: err}
}

// From normalizes any error into an *Error. The wrapped cause stays attached
// for logging but is never serialized to the caller.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("internal server error", err)
}
