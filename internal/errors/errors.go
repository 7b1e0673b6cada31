package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a caller-side shape violation rejected before a
// query is issued
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrPersonNotFound       = &NotFoundError{Entity: "person"}
	ErrMeetingNotFound      = &NotFoundError{Entity: "meeting"}
	ErrRegionNotFound       = &NotFoundError{Entity: "region"}
	ErrChapterNotFound      = &NotFoundError{Entity: "chapter"}
	ErrCountyNotFound       = &NotFoundError{Entity: "county"}
	ErrAttachmentNotFound   = &NotFoundError{Entity: "attachment"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidMissionArea      = errors.New("invalid mission area")
	ErrInvalidOrganizationType = errors.New("invalid organization type")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrAttendeeNotInOrg        = errors.New("attendee does not belong to the meeting's organization")
	ErrDuplicateAttendee       = errors.New("attendee listed more than once")
)

// Authentication Errors
var (
	ErrMissingPrincipal = &AuthenticationError{Message: "acting principal not found in request context"}
	ErrInvalidToken     = &AuthenticationError{Message: "invalid bearer token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
