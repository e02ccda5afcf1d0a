package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthError_IsMatchesKind(t *testing.T) {
	cause := NewDatabaseError(DatabaseErrorConflict, "User with this username already exists.", nil)
	err := fmt.Errorf("register: %w", NewAuthError(AuthErrorRegistrationFailed, "Registration failed: dup", cause))

	assert.ErrorIs(t, err, ErrRegistrationFailed)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
	assert.NotErrorIs(t, err, ErrAuth)

	var authErr *AuthError
	assert.True(t, errors.As(err, &authErr))
	assert.Equal(t, "registration_failed", authErr.Kind.String())
	assert.Equal(t, "Registration failed: dup: User with this username already exists.", authErr.Error())
}

func TestDatabaseError_Kinds(t *testing.T) {
	validation := NewDatabaseError(DatabaseErrorValidation, "Validation failed: x", errors.New("check"))

	assert.ErrorIs(t, validation, ErrValidation)
	assert.NotErrorIs(t, validation, ErrConflict)
	assert.NotErrorIs(t, validation, ErrDatabase)

	var dbErr *DatabaseError
	assert.True(t, errors.As(validation, &dbErr))
}

func TestEventPatch_Empty(t *testing.T) {
	title := "x"
	assert.True(t, EventPatch{}.Empty())
	assert.False(t, EventPatch{Title: &title}.Empty())
}
