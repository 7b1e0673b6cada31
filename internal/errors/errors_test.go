package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "organization"}
		assert.Equal(t, "organization not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "organization"}
		err2 := &NotFoundError{Entity: "organization"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "organization"}
		err2 := &NotFoundError{Entity: "meeting"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrOrganizationNotFound, ErrOrganizationNotFound))
		assert.False(t, errors.Is(ErrOrganizationNotFound, ErrMeetingNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("looking up meeting: %w", ErrMeetingNotFound)
		assert.True(t, errors.Is(wrapped, ErrMeetingNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrPersonNotFound))
		assert.False(t, IsNotFound(ErrInvalidStatus))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "name", Message: "must not be empty"}
		assert.Equal(t, "validation error: name - must not be empty", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "must not be empty"}
		assert.Equal(t, "validation error: must not be empty", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("name", "must not be empty")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrOrganizationNotFound))
	})

	t.Run("IsValidation through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("search-similar: %w", NewValidationError("name", "required"))
		assert.True(t, IsValidation(wrapped))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &AuthenticationError{Message: "token expired"}
		assert.Equal(t, "token expired", err.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrMissingPrincipal))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrPersonNotFound))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("sentinels are distinct", func(t *testing.T) {
		assert.False(t, errors.Is(ErrInvalidStatus, ErrInvalidMissionArea))
		assert.False(t, errors.Is(ErrInvalidMissionArea, ErrInvalidOrganizationType))
	})

	t.Run("sentinels survive wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("creating meeting: %w", ErrAttendeeNotInOrg)
		assert.True(t, errors.Is(wrapped, ErrAttendeeNotInOrg))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("attachment")
		assert.Equal(t, "attachment not found", err.Error())
		assert.True(t, IsNotFound(err))
		assert.True(t, errors.Is(err, ErrAttachmentNotFound))
	})

	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := NewAuthenticationError("signature mismatch")
		assert.Equal(t, "signature mismatch", err.Error())
		assert.True(t, IsAuthentication(err))
	})

	t.Run("helpers reject nil", func(t *testing.T) {
		assert.False(t, IsNotFound(nil))
		assert.False(t, IsValidation(nil))
		assert.False(t, IsAuthentication(nil))
	})
}
