package console

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by Login for an unknown user or a wrong
// password; the two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ValidationError means the caller sent missing or malformed input (HTTP 400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError means a lookup by id matched nothing (HTTP 404).
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// UpstreamError means a dependent backend call failed; the status is passed
// through to the caller.
type UpstreamError struct {
	Status int
	Msg    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream failure (status %d): %s", e.Status, e.Msg)
}
