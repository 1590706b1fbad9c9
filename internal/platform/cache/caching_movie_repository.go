// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mflix_backend/internal/feature/movies/domain/entity"
	"mflix_backend/internal/feature/movies/usecase"
)

// CachingMovieRepository decorates a MovieRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingMovieRepository struct {
	inner     usecase.MovieRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingMovieRepository decorates a MovieRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "movies".
func NewCachingMovieRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MovieRepository, namespace string) *CachingMovieRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "movies"
	}
	return &CachingMovieRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Find retrieves movies, checking cache first then falling back to the database.
func (c *CachingMovieRepository) Find(ctx context.Context, title string, limit int) ([]entity.Movie, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Find(ctx, title, limit)
	}

	key := c.cacheKey(title, limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.Find(ctx, title, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
// タイトルは小文字化してからエスケープします（検索は大文字小文字を無視するため）。
func (c *CachingMovieRepository) cacheKey(title string, limit int) string {
	return fmt.Sprintf("%s:%s:%d",
		c.namespace,
		safe(strings.ToLower(title)),
		limit,
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
