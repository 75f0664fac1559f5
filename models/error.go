package models

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the JSON envelope for HTTP error responses.
type Error struct {
	Message string `json:"message"`
}

// ValidationError reports the required fields missing or invalid in a
// submitted form. Always recoverable by re-prompting the user.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// DuplicateIDError reports a sign-up with a college id that already exists.
type DuplicateIDError struct {
	CollegeID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("an account with college id %q already exists", e.CollegeID)
}

// AuthorizationError reports an operation the current account is not allowed
// to perform, such as deleting an event it does not own.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return e.Reason
}

var (
	// ErrInvalidCredentials covers any mismatch of college id, password, or
	// role at login. Callers get no hint which of the three was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEventNotFound        = errors.New("event not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrAlreadyRegistered rejects a second registration by the same student
	// for the same event.
	ErrAlreadyRegistered = errors.New("already registered for this event")
)
