package setting

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const (
	cachePrefix = "settings:"
	cacheTTL    = 5 * time.Minute
)

// Cache is a redis cache-aside layer for settings key lookups. A nil
// *Cache is a no-op, so the store works without redis configured.
type Cache struct {
	client *redis.Client
}

// NewCache wraps an existing redis client.
func NewCache(client *redis.Client) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client}
}

// Get returns the cached raw JSON value for a key, if present.
func (c *Cache) Get(ctx context.Context, key string) (datatypes.JSON, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, cachePrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).WithField("key", key).Warn("settings cache read failed")
		}
		return nil, false
	}
	return datatypes.JSON(raw), true
}

// Set stores a key's raw JSON value. Failures are logged and swallowed;
// the database remains the source of truth.
func (c *Cache) Set(ctx context.Context, key string, value datatypes.JSON) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, cachePrefix+key, []byte(value), cacheTTL).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("settings cache write failed")
	}
}

// Invalidate drops a key after a write to its row.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, cachePrefix+key).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("settings cache invalidation failed")
	}
}
