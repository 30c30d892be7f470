// internal/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TTLs for the two things this service caches: fetched Graph API profiles
// and the auth service's JWKS document.
const (
	ProfileTTL = time.Hour
	JWKSTTL    = 30 * time.Minute
)

const (
	profileKeyPrefix = "meta_profile:"
	jwksKey          = "customer_service_jwks"
)

// Cache is a best-effort read-through cache. Every method tolerates an
// unreachable Redis: misses are returned and writes are dropped, so cache
// downtime never fails a request.
type Cache struct {
	client *redis.Client
	logger *zap.Logger
}

func New(addr, password string, db int, logger *zap.Logger) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Warn("redis unreachable, caching degraded", zap.Error(err))
	}
	return &Cache{client: rdb, logger: logger}
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// GetProfile returns the cached Graph API payload for a PSID, or false on miss.
func (c *Cache) GetProfile(ctx context.Context, platformID string) (map[string]interface{}, bool) {
	raw, err := c.client.Get(ctx, profileKeyPrefix+platformID).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("profile cache read failed", zap.String("platform_id", platformID), zap.Error(err))
		}
		return nil, false
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		c.logger.Warn("corrupt profile cache entry, dropping",
			zap.String("platform_id", platformID), zap.Error(err))
		_ = c.client.Del(ctx, profileKeyPrefix+platformID).Err()
		return nil, false
	}
	return payload, true
}

func (c *Cache) SetProfile(ctx context.Context, platformID string, payload map[string]interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, profileKeyPrefix+platformID, raw, ProfileTTL).Err(); err != nil {
		c.logger.Debug("profile cache write failed", zap.String("platform_id", platformID), zap.Error(err))
	}
}

func (c *Cache) InvalidateProfile(ctx context.Context, platformID string) {
	if err := c.client.Del(ctx, profileKeyPrefix+platformID).Err(); err != nil {
		c.logger.Debug("profile cache delete failed", zap.String("platform_id", platformID), zap.Error(err))
	}
}

// GetJWKS returns the cached JWKS JSON document, or false on miss.
func (c *Cache) GetJWKS(ctx context.Context) ([]byte, bool) {
	raw, err := c.client.Get(ctx, jwksKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("jwks cache read failed", zap.Error(err))
		}
		return nil, false
	}
	return raw, true
}

func (c *Cache) SetJWKS(ctx context.Context, document []byte) {
	if err := c.client.Set(ctx, jwksKey, document, JWKSTTL).Err(); err != nil {
		c.logger.Debug("jwks cache write failed", zap.Error(err))
	}
}
