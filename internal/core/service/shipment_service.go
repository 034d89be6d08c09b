package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/buy2send/shipping-rates/internal/core/domain"
	"github.com/buy2send/shipping-rates/internal/core/metrics"
	"github.com/buy2send/shipping-rates/internal/core/ports"
	"github.com/buy2send/shipping-rates/internal/core/validation"
)

type shipmentService struct {
	validator *validation.Validator
	quotes    ports.QuoteService
	log       zerolog.Logger
}

// NewShipmentService returns a ShipmentService that validates submissions
// and, when a courier is pinned, prices them. Nothing is persisted.
func NewShipmentService(v *validation.Validator, quotes ports.QuoteService, log zerolog.Logger) ports.ShipmentService {
	return &shipmentService{validator: v, quotes: quotes, log: log}
}

// Check runs the submission rules. Violations come back as a
// *domain.ValidationError listing every broken rule.
func (s *shipmentService) Check(ctx context.Context, sub domain.Submission) (*ports.ShipmentCheckResult, error) {
	if violations := s.validator.Validate(sub); len(violations) > 0 {
		typ := "unknown"
		if sub != nil {
			typ = string(sub.Type())
		}
		metrics.ShipmentValidationsTotal.WithLabelValues("invalid", typ).Inc()
		s.log.Debug().Str("type", typ).Int("violations", len(violations)).Msg("shipment rejected")
		return nil, &domain.ValidationError{Violations: violations}
	}
	metrics.ShipmentValidationsTotal.WithLabelValues("valid", string(sub.Type())).Inc()

	normalized, err := validation.Normalize(sub)
	if err != nil {
		return nil, fmt.Errorf("check shipment: %w", err)
	}
	result := &ports.ShipmentCheckResult{Shipment: normalized}

	base := sub.Common()
	if base.CourierService == "" || base.WeightGrams <= 0 {
		return result, nil
	}

	in := ports.QuoteInput{
		To:               base.Country,
		CourierServiceID: base.CourierService,
		Type:             string(sub.Type().Direction()),
		WeightGrams:      base.WeightGrams,
	}
	if vol, ok := base.Dimensions.VolumeCm3(); ok {
		in.VolumeCm3 = &vol
	}

	quote, err := s.quotes.Quote(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("check shipment: %w", err)
	}
	result.Quote = quote

	s.log.Info().
		Str("type", string(sub.Type())).
		Str("courier_service_id", base.CourierService).
		Bool("transportable", quote.Transportable).
		Msg("shipment checked")

	return result, nil
}
