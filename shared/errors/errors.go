package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrNotFound = errors.New("not found")

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// AuthRequiredError aborts an action before any network call or mutation.
type AuthRequiredError struct {
	Action string
}

func (e *AuthRequiredError) Error() string {
	if e.Action == "" {
		return "Please log in"
	}
	return fmt.Sprintf("Please log in to %s", e.Action)
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s", e.Message)
}

// RemoteError is a non-success envelope or a transport failure from the
// Forum API. Message is passed through verbatim.
type RemoteError struct {
	Message    string
	StatusCode int // 0 on transport failure
}

func (e *RemoteError) Error() string {
	return e.Message
}

// NotFoundf wraps ErrNotFound with a readable message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// StatusCode maps the taxonomy onto HTTP statuses for the view surface.
func StatusCode(err error) int {
	var withStatus *ErrorWithStatusCode
	switch {
	case errors.As(err, &withStatus):
		return withStatus.StatusCode
	case Is[*AuthRequiredError](err):
		return http.StatusUnauthorized
	case Is[*ValidationError](err):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case Is[*RemoteError](err):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
