package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/buy2send/shipping-rates/internal/core/domain"
	"github.com/buy2send/shipping-rates/internal/core/metrics"
	"github.com/buy2send/shipping-rates/internal/core/ports"
	"github.com/buy2send/shipping-rates/internal/core/pricing"
)

// CatalogSource abstracts where catalog snapshots come from.
type CatalogSource interface {
	Snapshot(ctx context.Context) (domain.Catalog, error)
	Invalidate(ctx context.Context) error
}

type quoteService struct {
	catalog CatalogSource
	log     zerolog.Logger
}

// NewQuoteService returns a QuoteService implementation.
func NewQuoteService(catalog CatalogSource, log zerolog.Logger) ports.QuoteService {
	return &quoteService{catalog: catalog, log: log}
}

// Quote prices a shipment against the current catalog snapshot. A shipment
// no courier can carry is a normal result with Transportable=false.
func (s *quoteService) Quote(ctx context.Context, in ports.QuoteInput) (*ports.QuoteResult, error) {
	req, err := toPricingInput(in)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}

	start := time.Now()
	calc := pricing.Calculate(req, catalog)
	metrics.QuoteCalculationDuration.Observe(time.Since(start).Seconds())

	pricing.SortByFinalPrice(calc.Prices)

	result := &ports.QuoteResult{
		QuoteID:       uuid.NewString(),
		From:          req.Origin,
		To:            req.To,
		Type:          req.Type,
		WeightGrams:   req.WeightGrams,
		VolumeCm3:     req.VolumeCm3,
		Transportable: calc.Transportable,
		Prices:        calc.Prices,
	}
	if best, ok := pricing.Best(calc.Prices); ok {
		result.Best = &best
	}

	outcome := "not_transportable"
	if calc.Transportable {
		outcome = "transportable"
	}
	metrics.QuotesTotal.WithLabelValues(outcome).Inc()
	metrics.QuoteOffers.Observe(float64(len(calc.Prices)))

	s.log.Info().
		Str("quote_id", result.QuoteID).
		Str("to", req.To).
		Str("type", string(req.Type)).
		Str("courier_service_id", req.CourierServiceID).
		Float64("weight_g", req.WeightGrams).
		Int("offers", len(calc.Prices)).
		Msg("quote priced")

	return result, nil
}

// ListCouriers returns the catalog couriers matching filter, in catalog order.
func (s *quoteService) ListCouriers(ctx context.Context, filter ports.CourierFilter) ([]domain.CourierService, error) {
	dir := domain.Direction(strings.ToLower(strings.TrimSpace(filter.Type)))
	if dir != "" && !dir.Valid() {
		return nil, fmt.Errorf("%w: type must be import or export", domain.ErrInvalidQuoteRequest)
	}

	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}

	out := make([]domain.CourierService, 0, len(catalog.Couriers))
	for _, c := range catalog.Couriers {
		if dir != "" && c.Type != dir {
			continue
		}
		if filter.To != "" && !c.Serves(strings.TrimSpace(filter.To)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *quoteService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	return catalog.Currencies, nil
}

func (s *quoteService) InvalidateCatalog(ctx context.Context) error {
	return s.catalog.Invalidate(ctx)
}

// toPricingInput checks the request shape and resolves the volume.
func toPricingInput(in ports.QuoteInput) (pricing.Input, error) {
	dir := domain.Direction(strings.ToLower(strings.TrimSpace(in.Type)))
	if !dir.Valid() {
		return pricing.Input{}, fmt.Errorf("%w: type must be import or export", domain.ErrInvalidQuoteRequest)
	}

	to := strings.ToUpper(strings.TrimSpace(in.To))
	if to == "" {
		return pricing.Input{}, fmt.Errorf("%w: destination country is required", domain.ErrInvalidQuoteRequest)
	}
	if in.WeightGrams < 0 {
		return pricing.Input{}, fmt.Errorf("%w: weight must not be negative", domain.ErrInvalidQuoteRequest)
	}

	var volume float64
	switch {
	case in.VolumeCm3 != nil:
		volume = *in.VolumeCm3
	case in.Dimensions != nil:
		d := in.Dimensions
		if d.LengthCm < 0 || d.WidthCm < 0 || d.HeightCm < 0 {
			return pricing.Input{}, fmt.Errorf("%w: dimensions must not be negative", domain.ErrInvalidQuoteRequest)
		}
		volume = d.LengthCm * d.WidthCm * d.HeightCm
	}
	if volume < 0 {
		return pricing.Input{}, fmt.Errorf("%w: volume must not be negative", domain.ErrInvalidQuoteRequest)
	}

	return pricing.Input{
		Origin:           strings.ToUpper(strings.TrimSpace(in.From)),
		To:               to,
		CourierServiceID: strings.TrimSpace(in.CourierServiceID),
		Type:             dir,
		WeightGrams:      in.WeightGrams,
		VolumeCm3:        volume,
	}, nil
}
