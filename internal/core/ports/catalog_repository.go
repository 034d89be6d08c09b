package ports

import (
	"context"
	"time"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

// CatalogRepository loads the courier and currency catalog from its store.
type CatalogRepository interface {
	// Load returns a full snapshot. VolumetricRate is resolved from the
	// configured volumetric currency record when present.
	Load(ctx context.Context) (*domain.Catalog, error)
	Ping(ctx context.Context) error
}

// CatalogCache holds a serialised catalog snapshot between loads.
type CatalogCache interface {
	// Get reports false on a miss.
	Get(ctx context.Context) (*domain.Catalog, bool, error)
	Set(ctx context.Context, catalog *domain.Catalog, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
