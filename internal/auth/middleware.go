package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-manager/internal/domain"
	apperrors "github.com/spec-kit/schedule-manager/pkg/util"
)

const identityKey = "auth_identity"

type identityCtxKey struct{}

// Identity represents the authenticated caller.
type Identity struct {
	SubjectID string
	Roles     []string
}

// TokenVerifier is the part of TokenManager the middleware needs.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// AuthMiddleware validates bearer tokens and attaches the caller identity.
type AuthMiddleware struct {
	tokens TokenVerifier
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return apperrors.NewUnauthorized("not authorized, no token provided")
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return apperrors.NewDomainError("TOKEN_EXPIRED", "not authorized, token expired", http.StatusUnauthorized, nil)
		}
		return apperrors.NewDomainError("TOKEN_INVALID", "not authorized, token invalid", http.StatusUnauthorized, nil)
	}

	identity := &Identity{SubjectID: claims.SubjectID(), Roles: claims.Roles}
	c.Locals(identityKey, identity)
	c.SetUserContext(ContextWithIdentity(c.UserContext(), identity))
	return c.Next()
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// IdentityFromCtx retrieves the authenticated caller from fiber locals.
func IdentityFromCtx(c *fiber.Ctx) (*Identity, bool) {
	identity, ok := c.Locals(identityKey).(*Identity)
	return identity, ok && identity != nil
}

// ContextWithIdentity returns a copy of ctx carrying identity.
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFromContext retrieves the authenticated caller from a request context.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(*Identity)
	return identity, ok && identity != nil
}
