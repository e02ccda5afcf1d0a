package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/schedule-manager/internal/domain"
)

// Querier is the subset of *pgxpool.Pool used by repositories.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// classifyWriteError maps a failed write to the DatabaseError hierarchy.
func classifyWriteError(err error, conflictMsg, failMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domain.NewDatabaseError(domain.DatabaseErrorConflict, conflictMsg, err)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException,
			pgerrcode.CharacterNotInRepertoire:
			return domain.NewDatabaseError(domain.DatabaseErrorValidation, "Validation failed: "+pgErr.Message, err)
		}
	}
	return domain.NewDatabaseError(domain.DatabaseErrorGeneric, failMsg, err)
}
