package ports

import (
	"context"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

// DimensionsInput holds package size in centimetres.
type DimensionsInput struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// QuoteInput carries a pricing request from the transport layer.
// Volume comes from VolumeCm3 when set, otherwise from Dimensions.
type QuoteInput struct {
	From             string
	To               string
	CourierServiceID string
	Type             string
	WeightGrams      float64
	VolumeCm3        *float64
	Dimensions       *DimensionsInput
}

// QuoteResult is a priced request. Prices are sorted cheapest first and
// Best points at the first one.
type QuoteResult struct {
	QuoteID       string
	From          string
	To            string
	Type          domain.Direction
	WeightGrams   float64
	VolumeCm3     float64
	Transportable bool
	Prices        []domain.Quote
	Best          *domain.Quote
}

// CourierFilter narrows ListCouriers. Empty fields match everything.
type CourierFilter struct {
	Type string
	To   string
}

// QuoteService prices shipments against the current catalog.
type QuoteService interface {
	Quote(ctx context.Context, input QuoteInput) (*QuoteResult, error)
	ListCouriers(ctx context.Context, filter CourierFilter) ([]domain.CourierService, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	InvalidateCatalog(ctx context.Context) error
}

// QuoteBatchItem is the outcome of one quote in a batch, at the same index as
// its input.
type QuoteBatchItem struct {
	Result *QuoteResult
	Err    error
}

// QuoteBatcher prices many quotes at once.
type QuoteBatcher interface {
	QuoteBatch(ctx context.Context, inputs []QuoteInput) []QuoteBatchItem
}
