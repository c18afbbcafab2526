package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"warga-registry-svc/internal/models"
)

// keyPrefix namespaces all registry cache entries
const keyPrefix = "desa::wargaByNik"

// WargaCache is a read-through cache for single warga lookups keyed by NIK.
// Entries expire after a fixed TTL and are evicted explicitly on writes.
type WargaCache interface {
	GetByNik(ctx context.Context, nik string) (*models.Warga, error)
	SetByNik(ctx context.Context, warga *models.Warga) error
	DeleteByNik(ctx context.Context, nik string) error
}

// wargaCache implements WargaCache over a Redis client. A nil client turns
// every operation into a no-op so the service runs without a cache.
type wargaCache struct {
	rc  *redis.Client
	ttl time.Duration
}

// NewWargaCache creates a new warga cache with the given TTL
func NewWargaCache(rc *redis.Client, ttl time.Duration) WargaCache {
	return &wargaCache{
		rc:  rc,
		ttl: ttl,
	}
}

func cacheKey(nik string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, nik)
}

// GetByNik retrieves a cached warga. A miss returns (nil, nil).
func (c *wargaCache) GetByNik(ctx context.Context, nik string) (*models.Warga, error) {
	if c.rc == nil {
		return nil, nil
	}

	result, err := c.rc.Get(ctx, cacheKey(nik)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var warga models.Warga
	if err := json.Unmarshal([]byte(result), &warga); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}
	return &warga, nil
}

// SetByNik stores a warga under its NIK with the configured TTL
func (c *wargaCache) SetByNik(ctx context.Context, warga *models.Warga) error {
	if c.rc == nil {
		return nil
	}

	bytes, err := json.Marshal(warga)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := c.rc.Set(ctx, cacheKey(warga.Nik), bytes, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// DeleteByNik evicts the cache entry for a NIK
func (c *wargaCache) DeleteByNik(ctx context.Context, nik string) error {
	if c.rc == nil {
		return nil
	}

	if err := c.rc.Del(ctx, cacheKey(nik)).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}
