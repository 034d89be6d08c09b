package ports

import (
	"context"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

// ShipmentCheckResult is returned when a submission passes validation.
// Quote is set only when the submission pins a courier and declares a weight.
type ShipmentCheckResult struct {
	Shipment domain.NormalizedShipment
	Quote    *QuoteResult
}

// ShipmentService gates shipment submissions before order creation.
type ShipmentService interface {
	// Check returns *domain.ValidationError when the submission breaks any rule.
	Check(ctx context.Context, submission domain.Submission) (*ShipmentCheckResult, error)
}
