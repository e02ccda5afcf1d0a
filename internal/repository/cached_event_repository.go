package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/schedule-manager/internal/domain"
)

const eventGenerationKey = "events:gen"

// CacheClient is the subset of *redis.Client used for caching.
type CacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// CachedEventRepository serves event reads from Redis and falls back to the wrapped
// repository on a miss or any cache failure. Entries are namespaced by a generation
// counter that every write bumps after the row is committed, so a fill that raced a
// write lands under a generation no reader asks for again.
type CachedEventRepository struct {
	inner  EventRepository
	cache  CacheClient
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedEventRepository wraps inner with a read-through cache.
func NewCachedEventRepository(inner EventRepository, cache CacheClient, ttl time.Duration, logger *zap.Logger) *CachedEventRepository {
	return &CachedEventRepository{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

func eventCacheKey(gen int64, id string) string {
	return fmt.Sprintf("events:%d:event:%s", gen, id)
}

func eventListCacheKey(gen int64) string {
	return fmt.Sprintf("events:%d:all", gen)
}

func (r *CachedEventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	gen, ok := r.generation(ctx)
	var cached []domain.Event
	if ok && r.load(ctx, eventListCacheKey(gen), &cached) {
		return cached, nil
	}

	events, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		r.store(ctx, eventListCacheKey(gen), events)
	}
	return events, nil
}

func (r *CachedEventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	gen, ok := r.generation(ctx)
	var cached domain.Event
	if ok && r.load(ctx, eventCacheKey(gen, id), &cached) {
		return &cached, nil
	}

	event, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ok {
		r.store(ctx, eventCacheKey(gen, id), event)
	}
	return event, nil
}

func (r *CachedEventRepository) Create(ctx context.Context, newEvent domain.NewEvent) (*domain.Event, error) {
	event, err := r.inner.Create(ctx, newEvent)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return event, nil
}

func (r *CachedEventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (bool, error) {
	updated, err := r.inner.Update(ctx, id, patch)
	if err != nil {
		return false, err
	}
	if updated {
		r.invalidate(ctx)
	}
	return updated, nil
}

func (r *CachedEventRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.inner.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.invalidate(ctx)
	}
	return deleted, nil
}

// generation reports the current cache namespace; ok is false when the cache is unusable.
func (r *CachedEventRepository) generation(ctx context.Context) (int64, bool) {
	gen, err := r.cache.Get(ctx, eventGenerationKey).Int64()
	switch {
	case err == nil:
		return gen, true
	case errors.Is(err, redis.Nil):
		return 0, true
	default:
		r.logger.Warn("event cache read failed", zap.String("key", eventGenerationKey), zap.Error(err))
		return 0, false
	}
}

func (r *CachedEventRepository) load(ctx context.Context, key string, dest any) bool {
	raw, err := r.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("event cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		r.logger.Warn("event cache entry unreadable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *CachedEventRepository) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("event cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.cache.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.logger.Warn("event cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *CachedEventRepository) invalidate(ctx context.Context) {
	if err := r.cache.Incr(ctx, eventGenerationKey).Err(); err != nil {
		r.logger.Warn("event cache invalidation failed", zap.Error(err))
	}
}
