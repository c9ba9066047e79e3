package services

import "fmt"

// NotFoundError covers both a missing row and a row owned by another user.
// The two cases are deliberately indistinguishable so the API never leaks
// the existence of other tenants' data.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func notFound(entity string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("%s not found.", entity)}
}

// ValidationError carries a top-level message plus per-field messages the
// UI uses to annotate form inputs.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError is a uniqueness violation, e.g. a duplicate email at signup.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
