package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

// DefaultCatalogKey is where the serialised catalog snapshot lives.
const DefaultCatalogKey = "catalog:snapshot:v1"

// CatalogCache stores the whole catalog as one JSON value with a TTL.
type CatalogCache struct {
	client *redis.Client
	key    string
}

// NewCatalogCache wraps client. An empty key uses DefaultCatalogKey.
func NewCatalogCache(client *redis.Client, key string) *CatalogCache {
	if key == "" {
		key = DefaultCatalogKey
	}
	return &CatalogCache{client: client, key: key}
}

// Get returns the cached snapshot, reporting false when there is none.
func (c *CatalogCache) Get(ctx context.Context) (*domain.Catalog, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, false, fmt.Errorf("catalog cache decode: %w", err)
	}
	return &catalog, true, nil
}

// Set replaces the cached snapshot; it expires after ttl.
func (c *CatalogCache) Set(ctx context.Context, catalog *domain.Catalog, ttl time.Duration) error {
	raw, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("catalog cache set: %w", err)
	}
	return nil
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

// Ping reports whether Redis answers.
func (c *CatalogCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
