package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/schedule-manager/internal/domain"
)

// Payload is what gets encoded into an issued token.
type Payload struct {
	SubjectID string
	Roles     []string
}

// Claims describes JWT payload.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// SubjectID returns the authenticated user id carried by the token.
func (c *Claims) SubjectID() string {
	return c.Subject
}

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewTokenManager builds a new manager. Misconfiguration is reported by Issue, not here.
func NewTokenManager(secret string, ttl time.Duration, logger *zap.Logger) *TokenManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, logger: logger, now: time.Now}
}

// Issue builds and signs a JWT for the payload subject.
func (tm *TokenManager) Issue(payload Payload) (string, error) {
	if len(tm.secret) == 0 || tm.ttl <= 0 {
		return "", &domain.TokenError{Message: "token signing is not configured: secret or expiry missing"}
	}
	if payload.SubjectID == "" {
		return "", &domain.TokenError{Message: "token subject is empty"}
	}

	now := tm.now()
	claims := &Claims{
		Roles: payload.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.SubjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", &domain.TokenError{Message: "could not generate token", Err: err}
	}
	return tokenString, nil
}

// Parse validates the token and returns its claims, or domain.ErrTokenExpired /
// domain.ErrTokenInvalid.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)

	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Join(domain.ErrTokenExpired, err)
		}
		return nil, errors.Join(domain.ErrTokenInvalid, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// Verify parses tokenStr like Parse and logs the reason a token is rejected.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	claims, err := tm.Parse(tokenStr)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			tm.logger.Warn("jwt token expired")
		} else {
			tm.logger.Warn("invalid jwt token", zap.Error(err))
		}
		return nil, err
	}
	return claims, nil
}
