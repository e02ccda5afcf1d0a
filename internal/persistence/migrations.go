package persistence

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// gooseRun is swapped in tests.
var gooseRun = func(ctx context.Context, command string, db *sql.DB, dir string, args ...string) error {
	return goose.RunContext(ctx, command, db, dir, args...)
}

// RunMigrations applies every pending embedded migration.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	return Migrate(ctx, pool, logger, "up")
}

// Migrate runs a goose command ("up", "down", "status", "version", ...) against the
// embedded migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger, command string, args ...string) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(zap.NewStdLog(logger.Named("goose")))
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}

	logger.Info("running migrations", zap.String("command", command))
	if err := gooseRun(ctx, command, db, migrationsDir, args...); err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}
