package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/schedule-manager/internal/domain"
)

// UserRepository is the credential store. The public read never selects the password hash;
// FindCredentialsByUsername is the only read that does.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindCredentialsByUsername(ctx context.Context, username string) (*domain.UserCredentials, error)
	Create(ctx context.Context, user domain.NewUser) (*domain.User, error)
}

type userRepository struct {
	db Querier
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db Querier) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, created_at, updated_at
        FROM users WHERE username=$1`

	var user domain.User
	if err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewDatabaseError(domain.DatabaseErrorGeneric, "Failed to find user", err)
	}
	return &user, nil
}

func (r *userRepository) FindCredentialsByUsername(ctx context.Context, username string) (*domain.UserCredentials, error) {
	const query = `
        SELECT id, username, password_hash, created_at, updated_at
        FROM users WHERE username=$1`

	var creds domain.UserCredentials
	if err := r.db.QueryRow(ctx, query, username).Scan(
		&creds.ID,
		&creds.Username,
		&creds.PasswordHash,
		&creds.CreatedAt,
		&creds.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewDatabaseError(domain.DatabaseErrorGeneric, "Failed to find user", err)
	}
	return &creds, nil
}

// Create inserts the user. A duplicate username surfaces as a conflict from the unique index.
func (r *userRepository) Create(ctx context.Context, newUser domain.NewUser) (*domain.User, error) {
	const query = `
        INSERT INTO users (username, password_hash)
        VALUES ($1, $2)
        RETURNING id, username, created_at, updated_at`

	var user domain.User
	if err := r.db.QueryRow(ctx, query,
		newUser.Username,
		newUser.PasswordHash,
	).Scan(&user.ID, &user.Username, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, classifyWriteError(err, "User with this username already exists.", "Failed to create user")
	}
	return &user, nil
}
