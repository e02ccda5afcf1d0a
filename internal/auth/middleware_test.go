package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/spec-kit/schedule-manager/pkg/util"
)

func newProtectedApp(tm *TokenManager, reached *bool) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{"code": de.Code, "message": de.Message}})
		},
	})
	app.Get("/protected", NewAuthMiddleware(tm).Handle, func(c *fiber.Ctx) error {
		*reached = true
		fromLocals, ok := IdentityFromCtx(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		fromContext, ok := IdentityFromContext(c.UserContext())
		if !ok || fromContext.SubjectID != fromLocals.SubjectID {
			return fiber.ErrInternalServerError
		}
		return c.SendString(fromLocals.SubjectID)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, nil)
	token, err := tm.Issue(Payload{SubjectID: "user-42"})
	require.NoError(t, err)

	var reached bool
	status, body := doRequest(t, newProtectedApp(tm, &reached), "Bearer "+token)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "user-42", body)
	assert.True(t, reached)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute, nil)
	token, err := tm.Issue(Payload{SubjectID: "user-42"})
	require.NoError(t, err)

	expiring := NewTokenManager("secret", time.Minute, nil)
	expiring.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	expired, err := expiring.Issue(Payload{SubjectID: "user-42"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "no token provided"},
		{"wrong scheme", "Basic " + token, "no token provided"},
		{"bearer without token", "Bearer ", "no token provided"},
		{"invalid token", "Bearer not-a-token", "token invalid"},
		{"expired token", "Bearer " + expired, "token expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			status, body := doRequest(t, newProtectedApp(tm, &reached), tt.header)

			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Contains(t, body, tt.message)
			assert.False(t, reached)
		})
	}
}

func TestAuthMiddleware_LogsRejectionReason(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	tm := NewTokenManager("secret", time.Minute, zap.New(core))

	expiring := NewTokenManager("secret", time.Minute, nil)
	expiring.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	expired, err := expiring.Issue(Payload{SubjectID: "user-42"})
	require.NoError(t, err)

	var reached bool
	app := newProtectedApp(tm, &reached)

	status, _ := doRequest(t, app, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = doRequest(t, app, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, reached)

	entries := logs.TakeAll()
	require.Len(t, entries, 2)
	assert.Equal(t, "jwt token expired", entries[0].Message)
	assert.Equal(t, "invalid jwt token", entries[1].Message)
}
