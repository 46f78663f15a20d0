package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds; every *Error unwraps to exactly one of them
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrAuthRequired = errors.New("authentication required")
	ErrNetwork      = errors.New("network error")
)

// Error is a failed backend call
type Error struct {
	Status  int
	Message string
	Kind    error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%v (%d): %s", e.Kind, e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// kindForStatus maps an HTTP status to an error kind
func kindForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuthRequired
	default:
		return ErrNetwork
	}
}

// Message returns the user facing text of err
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
