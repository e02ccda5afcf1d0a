package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/schedule-manager/internal/activity"
	"github.com/spec-kit/schedule-manager/internal/auth"
	"github.com/spec-kit/schedule-manager/internal/config"
	"github.com/spec-kit/schedule-manager/internal/domain"
	"github.com/spec-kit/schedule-manager/internal/repository"
)

const (
	msgRegisterDatabase = "Could not register user due to a database issue."
	msgLoginDatabase    = "An unexpected database error occurred during login. Please try again later."
	msgUnknown          = "An unknown authentication error occurred."
	msgPasswordTooLong  = "password must be at most 72 bytes"
	msgUsernameNUL      = "username must not contain NUL characters"
)

// maxPasswordBytes is the longest input bcrypt hashes.
const maxPasswordBytes = 72

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	Issue(payload auth.Payload) (string, error)
}

// AuthResult is returned by Register and Login. Only the identifier of the user is exposed.
type AuthResult struct {
	UserID string
	Token  string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokens     TokenIssuer
	bcryptCost int
	dispatcher activity.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborators of the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Tokens   TokenIssuer
	Activity activity.Dispatcher
	Logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		tokens:     deps.Tokens,
		bcryptCost: cfg.BcryptCost,
		dispatcher: deps.Activity,
		logger:     logger,
	}
}

// Register creates an account and returns a token for it.
func (s *AuthService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewAuthError(domain.AuthErrorUnknown, msgRegisterDatabase, err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, domain.NewAuthError(domain.AuthErrorUnknown, msgUnknown, err)
	}

	user, err := s.users.Create(ctx, domain.NewUser{Username: username, PasswordHash: hash})
	if err != nil {
		var dbErr *domain.DatabaseError
		switch {
		case errors.Is(err, domain.ErrConflict) && errors.As(err, &dbErr):
			return nil, domain.NewAuthError(domain.AuthErrorRegistrationFailed, "Registration failed: "+dbErr.Message, err)
		default:
			return nil, domain.NewAuthError(domain.AuthErrorUnknown, msgRegisterDatabase, err)
		}
	}

	token, err := s.tokens.Issue(auth.Payload{SubjectID: user.ID})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	if s.dispatcher != nil {
		s.dispatcher.Publish(ctx, activity.New(activity.KindUserRegistered, user.ID, user.ID))
	}
	return &AuthResult{UserID: user.ID, Token: token}, nil
}

// Login verifies credentials and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	creds, err := s.users.FindCredentialsByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.NewAuthError(domain.AuthErrorUnknown, msgLoginDatabase, err)
	}

	if err := auth.ComparePassword(creds.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.NewAuthError(domain.AuthErrorUnknown, msgUnknown, err)
	}

	token, err := s.tokens.Issue(auth.Payload{SubjectID: creds.ID})
	if err != nil {
		return nil, err
	}
	return &AuthResult{UserID: creds.ID, Token: token}, nil
}

func validateCredentials(username, password string) error {
	if username == "" || password == "" {
		return domain.NewAuthError(domain.AuthErrorBadRequest, "Username and password are required.", nil)
	}
	if strings.ContainsRune(username, 0) {
		return domain.NewAuthError(domain.AuthErrorBadRequest, msgUsernameNUL, nil)
	}
	if len(password) > maxPasswordBytes {
		return domain.NewAuthError(domain.AuthErrorBadRequest, msgPasswordTooLong, nil)
	}
	return nil
}
