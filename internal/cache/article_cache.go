// Package cache provides a Redis read cache for article listings.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"blog-service/internal/domain"
)

const keyList = "articles:list"

// ArticleCache caches the article listing in Redis. Misses return nil
// without error so callers can fall through to the database.
type ArticleCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewArticleCache returns a new ArticleCache.
func NewArticleCache(rdb *redis.Client, ttl time.Duration) *ArticleCache {
	return &ArticleCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached listing or nil on miss.
func (c *ArticleCache) GetList(ctx context.Context) ([]domain.Article, error) {
	b, err := c.rdb.Get(ctx, keyList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []domain.Article
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the listing in cache.
func (c *ArticleCache) SetList(ctx context.Context, list []domain.Article) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyList, b, c.ttl).Err()
}

// Invalidate drops the cached listing (called on any article write).
func (c *ArticleCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyList).Err()
}
