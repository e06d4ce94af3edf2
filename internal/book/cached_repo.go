package book

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "bookshelf:catalog:"

// CachedRepo is a read-through Redis cache in front of another Repository.
// Cache failures are logged and the inner repository answers instead.
type CachedRepo struct {
	inner Repository
	rdb   redis.Cmdable
	ttl   time.Duration
}

func NewCachedRepo(inner Repository, rdb redis.Cmdable, ttl time.Duration) *CachedRepo {
	return &CachedRepo{inner: inner, rdb: rdb, ttl: ttl}
}

func (r *CachedRepo) ListTop(ctx context.Context, limit int) ([]Book, error) {
	key := fmt.Sprintf("%stop:%d", cacheKeyPrefix, limit)
	return readThrough(ctx, r, key, func() ([]Book, error) {
		return r.inner.ListTop(ctx, limit)
	})
}

func (r *CachedRepo) ListByAuthor(ctx context.Context, author string, limit int) ([]Book, error) {
	key := fmt.Sprintf("%sauthor:%d:%s", cacheKeyPrefix, limit, author)
	return readThrough(ctx, r, key, func() ([]Book, error) {
		return r.inner.ListByAuthor(ctx, author, limit)
	})
}

func (r *CachedRepo) ListAuthors(ctx context.Context) ([]string, error) {
	return readThrough(ctx, r, cacheKeyPrefix+"authors", func() ([]string, error) {
		return r.inner.ListAuthors(ctx)
	})
}

func readThrough[T any](ctx context.Context, r *CachedRepo, key string, load func() (T, error)) (T, error) {
	var cached T
	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jerr := json.Unmarshal(raw, &cached); jerr == nil {
			return cached, nil
		}
		log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	fresh, err := load()
	if err != nil {
		return fresh, err
	}

	payload, err := json.Marshal(fresh)
	if err != nil {
		return fresh, nil
	}
	if err := r.rdb.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return fresh, nil
}
