package models

import "fmt"

// ErrorNotFound is returned when a referenced id or slug does not exist.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

// ErrorConflict is returned on a uniqueness violation.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

// ErrorPreconditionFailed is returned when dependent rows block an operation.
type ErrorPreconditionFailed struct {
	Message string
}

func (e ErrorPreconditionFailed) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

// ErrorBadRequest is returned when input fails validation. Cause keeps the
// underlying validator errors so transports can report them per field.
type ErrorBadRequest struct {
	Message string
	Cause   error
}

func (e ErrorBadRequest) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e ErrorBadRequest) Unwrap() error { return e.Cause }

// ErrorUnavailable is returned when an optional collaborator is not configured.
type ErrorUnavailable struct {
	Message string
}

func (e ErrorUnavailable) Error() string { return e.Message }

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string { return e.Message }
