// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/usecase"
)

// CachingAuthorRepository decorates an AuthorRepository with Redis caching
// of the author listing. Every author mutation invalidates the cached
// list, so staleness is bounded by the TTL only for external writers.
type CachingAuthorRepository struct {
	inner     usecase.AuthorRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.AuthorRepository = (*CachingAuthorRepository)(nil)

// NewCachingAuthorRepository decorates an AuthorRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "authors".
func NewCachingAuthorRepository(rdb *redis.Client, ttl time.Duration, inner usecase.AuthorRepository, namespace string) *CachingAuthorRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "authors"
	}
	return &CachingAuthorRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingAuthorRepository) listKey() string {
	return c.namespace + ":all"
}

// invalidate removes the cached listing. Best effort: a failed delete only
// shortens the window to the TTL.
func (c *CachingAuthorRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey()).Err()
}

// Create persists the author and invalidates the cached listing.
func (c *CachingAuthorRepository) Create(ctx context.Context, author *entity.Author) error {
	if err := c.inner.Create(ctx, author); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindAll returns the author listing, checking the cache first.
func (c *CachingAuthorRepository) FindAll(ctx context.Context) ([]entity.Author, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Author
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Populate cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// FindByID is a passthrough; per-author reads include books, which change
// too often to cache profitably here.
func (c *CachingAuthorRepository) FindByID(ctx context.Context, id uint) (*entity.Author, error) {
	return c.inner.FindByID(ctx, id)
}

// Update persists the change and invalidates the cached listing.
func (c *CachingAuthorRepository) Update(ctx context.Context, author *entity.Author) error {
	if err := c.inner.Update(ctx, author); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes the author and invalidates the cached listing.
func (c *CachingAuthorRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}
