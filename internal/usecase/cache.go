package usecase

import (
	"context"
	"time"
)

// Cache is the slice of the redis wrapper the usecases rely on. A nil or
// unavailable backend degrades to no-ops, so callers treat every miss the
// same way and never fail a request over the cache.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// noopCache keeps usecases nil-safe when no redis is configured.
type noopCache struct{}

func (noopCache) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (noopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, string) error                      { return nil }
func (noopCache) DeleteByPattern(context.Context, string) error             { return nil }

// Locks fail open without a backend so callers proceed instead of waiting.
func (noopCache) SetIfNotExists(context.Context, string, string, time.Duration) (bool, error) {
	return true, nil
}

func orNoopCache(c Cache) Cache {
	if c == nil {
		return noopCache{}
	}
	return c
}
