package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("not found")

// AuthErrorKind distinguishes the leaves of the auth error hierarchy.
type AuthErrorKind int

const (
	AuthErrorUnknown AuthErrorKind = iota
	AuthErrorBadRequest
	AuthErrorUserNotFound
	AuthErrorInvalidCredentials
	AuthErrorUsernameTaken
	AuthErrorRegistrationFailed
)

func (k AuthErrorKind) String() string {
	switch k {
	case AuthErrorBadRequest:
		return "bad_request"
	case AuthErrorUserNotFound:
		return "user_not_found"
	case AuthErrorInvalidCredentials:
		return "invalid_credentials"
	case AuthErrorUsernameTaken:
		return "username_taken"
	case AuthErrorRegistrationFailed:
		return "registration_failed"
	default:
		return "unknown"
	}
}

// AuthError is the base of the authentication error hierarchy. Any *AuthError matches
// errors.As; the sentinels below match errors.Is by kind.
type AuthError struct {
	Kind    AuthErrorKind
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is matches another *AuthError of the same kind.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrAuth               = &AuthError{Kind: AuthErrorUnknown, Message: "authentication error"}
	ErrBadRequest         = &AuthError{Kind: AuthErrorBadRequest, Message: "bad request"}
	ErrUserNotFound       = &AuthError{Kind: AuthErrorUserNotFound, Message: "User not found."}
	ErrInvalidCredentials = &AuthError{Kind: AuthErrorInvalidCredentials, Message: "Incorrect password."}
	ErrUsernameTaken      = &AuthError{Kind: AuthErrorUsernameTaken, Message: "Username is already taken."}
	ErrRegistrationFailed = &AuthError{Kind: AuthErrorRegistrationFailed, Message: "Registration failed."}
)

// NewAuthError builds an AuthError of the given kind.
func NewAuthError(kind AuthErrorKind, message string, err error) *AuthError {
	return &AuthError{Kind: kind, Message: message, Err: err}
}

// DatabaseErrorKind classifies persistence failures.
type DatabaseErrorKind int

const (
	DatabaseErrorGeneric DatabaseErrorKind = iota
	DatabaseErrorConflict
	DatabaseErrorValidation
)

// DatabaseError wraps a store failure. Conflict and validation errors are DatabaseErrors too.
type DatabaseError struct {
	Kind    DatabaseErrorKind
	Message string
	Err     error
}

func (e *DatabaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

func (e *DatabaseError) Is(target error) bool {
	t, ok := target.(*DatabaseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrDatabase   = &DatabaseError{Kind: DatabaseErrorGeneric, Message: "database error"}
	ErrConflict   = &DatabaseError{Kind: DatabaseErrorConflict, Message: "conflict"}
	ErrValidation = &DatabaseError{Kind: DatabaseErrorValidation, Message: "validation failed"}
)

// NewDatabaseError builds a DatabaseError of the given kind.
func NewDatabaseError(kind DatabaseErrorKind, message string, err error) *DatabaseError {
	return &DatabaseError{Kind: kind, Message: message, Err: err}
}

// TokenError reports a signing misconfiguration or failure. It is never caused by the caller.
type TokenError struct {
	Message string
	Err     error
}

func (e *TokenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// Token verification outcomes.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)
