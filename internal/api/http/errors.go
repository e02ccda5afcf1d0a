package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-manager/internal/domain"
	apperrors "github.com/spec-kit/schedule-manager/pkg/util"
)

const (
	productionMessage = "Something went wrong!"
	databaseMessage   = "A database error occurred. Please try again later."
	internalMessage   = "internal server error"
)

// classify maps any error returned by a handler onto the response it renders.
// The result is always a fresh value and may be modified by the caller.
func classify(err error) *apperrors.DomainError {
	var (
		domainErr *apperrors.DomainError
		fiberErr  *fiber.Error
		authErr   *domain.AuthError
		dbErr     *domain.DatabaseError
		tokenErr  *domain.TokenError
	)

	switch {
	case errors.As(err, &domainErr):
		out := *domainErr
		return &out
	case errors.As(err, &fiberErr):
		return apperrors.NewDomainError(statusCode(fiberErr.Code), fiberErr.Message, fiberErr.Code, nil)
	case errors.As(err, &authErr):
		return classifyAuth(authErr)
	case errors.As(err, &dbErr):
		return classifyDatabase(dbErr)
	case errors.As(err, &tokenErr):
		return apperrors.NewDomainError("TOKEN_ERROR", internalMessage, http.StatusInternalServerError, nil)
	case errors.Is(err, domain.ErrNotFound):
		return apperrors.NewDomainError("NOT_FOUND", "resource not found", http.StatusNotFound, nil)
	default:
		return apperrors.ToDomainError(err)
	}
}

func classifyAuth(err *domain.AuthError) *apperrors.DomainError {
	switch err.Kind {
	case domain.AuthErrorBadRequest:
		return apperrors.NewDomainError("BAD_REQUEST", err.Message, http.StatusBadRequest, nil)
	case domain.AuthErrorUserNotFound, domain.AuthErrorInvalidCredentials:
		// Both render identically so usernames cannot be enumerated.
		return apperrors.NewDomainError("INVALID_CREDENTIALS", "Invalid credentials.", http.StatusUnauthorized, nil)
	case domain.AuthErrorUsernameTaken:
		return apperrors.NewDomainError("USERNAME_TAKEN", err.Message, http.StatusConflict, nil)
	case domain.AuthErrorRegistrationFailed:
		return apperrors.NewDomainError("REGISTRATION_FAILED", err.Message, http.StatusConflict, nil)
	default:
		return apperrors.NewDomainError("AUTH_ERROR", err.Message, http.StatusInternalServerError, nil)
	}
}

func classifyDatabase(err *domain.DatabaseError) *apperrors.DomainError {
	switch err.Kind {
	case domain.DatabaseErrorConflict:
		return apperrors.NewDomainError("CONFLICT", err.Message, http.StatusConflict, nil)
	case domain.DatabaseErrorValidation:
		return apperrors.NewDomainError("VALIDATION_FAILED", err.Message, http.StatusBadRequest, nil)
	default:
		return apperrors.NewDomainError("DATABASE_ERROR", databaseMessage, http.StatusInternalServerError, nil)
	}
}

func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
