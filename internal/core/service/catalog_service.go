package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/buy2send/shipping-rates/internal/core/domain"
	"github.com/buy2send/shipping-rates/internal/core/metrics"
	"github.com/buy2send/shipping-rates/internal/core/ports"
)

const defaultCatalogTTL = 5 * time.Minute

// CatalogService serves catalog snapshots, reading through a cache in front
// of the catalog store. The cache is optional; a nil cache always loads.
type CatalogService struct {
	repo  ports.CatalogRepository
	cache ports.CatalogCache
	ttl   time.Duration
	log   zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, cache ports.CatalogCache, ttl time.Duration, log zerolog.Logger) *CatalogService {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &CatalogService{repo: repo, cache: cache, ttl: ttl, log: log}
}

// Snapshot returns the current catalog. Cache failures are logged and fall
// back to the store; only a store failure is returned.
func (s *CatalogService) Snapshot(ctx context.Context) (domain.Catalog, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.CatalogCacheTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(err).Msg("catalog cache read failed, loading from store")
		case ok:
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return *cached, nil
		default:
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	catalog, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load catalog")
		return domain.Catalog{}, fmt.Errorf("load catalog: %w: %w", domain.ErrCatalogUnavailable, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalog, s.ttl); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache catalog")
		}
	}

	s.log.Debug().
		Int("couriers", len(catalog.Couriers)).
		Int("currencies", len(catalog.Currencies)).
		Msg("catalog loaded")

	return *catalog, nil
}

// Invalidate drops the cached snapshot so the next Snapshot reloads.
func (s *CatalogService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate catalog: %w", err)
	}
	s.log.Info().Msg("catalog cache invalidated")
	return nil
}
