package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/schedule-manager/internal/config"
)

func TestPingWithRetry(t *testing.T) {
	refused := errors.New("connection refused")

	t.Run("recovers once the database answers", func(t *testing.T) {
		calls := 0
		ping := func(context.Context) error {
			calls++
			if calls < 3 {
				return refused
			}
			return nil
		}

		assert.NoError(t, pingWithRetry(context.Background(), ping, 5, time.Millisecond, zap.NewNop()))
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the configured retries", func(t *testing.T) {
		calls := 0
		ping := func(context.Context) error {
			calls++
			return refused
		}

		err := pingWithRetry(context.Background(), ping, 2, time.Millisecond, zap.NewNop())
		assert.ErrorIs(t, err, refused)
		assert.Equal(t, 3, calls)
	})
}

func TestNewPostgres_InvalidDSN(t *testing.T) {
	_, err := NewPostgres(context.Background(), config.PostgresConfig{DSN: "::not a dsn::"}, zap.NewNop())
	assert.Error(t, err)
}

func TestPostgres_NilPing(t *testing.T) {
	var p *Postgres
	assert.Error(t, p.Ping(context.Background()))
	assert.Nil(t, p.PoolHandle())
	p.Close()
}
