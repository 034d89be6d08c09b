package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buy2send/shipping-rates/internal/core/domain"
	"github.com/buy2send/shipping-rates/internal/core/ports"
)

func newQuoteSvc(repo *stubCatalogRepo) ports.QuoteService {
	return NewQuoteService(NewCatalogService(repo, nil, 0, zerolog.Nop()), zerolog.Nop())
}

func floatPtr(f float64) *float64 { return &f }

func TestQuoteService_SortsCheapestFirst(t *testing.T) {
	svc := newQuoteSvc(&stubCatalogRepo{catalog: sampleCatalog()})

	res, err := svc.Quote(context.Background(), ports.QuoteInput{
		From:        "lk",
		To:          " us ",
		Type:        "EXPORT",
		WeightGrams: 3000,
	})

	require.NoError(t, err)
	assert.True(t, res.Transportable)
	assert.Equal(t, "US", res.To)
	assert.Equal(t, "LK", res.From)
	assert.Equal(t, domain.DirectionExport, res.Type)
	require.Len(t, res.Prices, 2)
	assert.Equal(t, "cs_fedex_export", res.Prices[0].CourierServiceID)
	assert.Equal(t, "cs_dhl_export", res.Prices[1].CourierServiceID)
	require.NotNil(t, res.Best)
	assert.Equal(t, "cs_fedex_export", res.Best.CourierServiceID)

	_, err = uuid.Parse(res.QuoteID)
	assert.NoError(t, err)
}

func TestQuoteService_NotTransportableIsNotAnError(t *testing.T) {
	svc := newQuoteSvc(&stubCatalogRepo{catalog: sampleCatalog()})

	res, err := svc.Quote(context.Background(), ports.QuoteInput{To: "CA", Type: "export", WeightGrams: 1000})

	require.NoError(t, err)
	assert.False(t, res.Transportable)
	assert.Empty(t, res.Prices)
	assert.Nil(t, res.Best)
}

func TestQuoteService_VolumeFromDimensions(t *testing.T) {
	svc := newQuoteSvc(&stubCatalogRepo{catalog: sampleCatalog()})

	res, err := svc.Quote(context.Background(), ports.QuoteInput{
		To:               "US",
		Type:             "export",
		CourierServiceID: "cs_dhl_export",
		WeightGrams:      1000,
		Dimensions:       &ports.DimensionsInput{LengthCm: 2, WidthCm: 2, HeightCm: 10},
	})

	require.NoError(t, err)
	assert.Equal(t, 40.0, res.VolumeCm3)
	require.Len(t, res.Prices, 1)
	assert.Equal(t, "100", res.Prices[0].DimensionPrice.String())
}

func TestQuoteService_ExplicitVolumeWinsOverDimensions(t *testing.T) {
	svc := newQuoteSvc(&stubCatalogRepo{catalog: sampleCatalog()})

	res, err := svc.Quote(context.Background(), ports.QuoteInput{
		To:          "US",
		Type:        "export",
		WeightGrams: 1000,
		VolumeCm3:   floatPtr(4),
		Dimensions:  &ports.DimensionsInput{LengthCm: 10, WidthCm: 10, HeightCm: 10},
	})

	require.NoError(t, err)
	assert.Equal(t, 4.0, res.VolumeCm3)
}

func TestQuoteService_RejectsBadInput(t *testing.T) {
	svc := newQuoteSvc(&stubCatalogRepo{catalog: sampleCatalog()})

	cases := []struct {
		name string
		in   ports.QuoteInput
	}{
		{"unknown type", ports.QuoteInput{To: "US", Type: "domestic", WeightGrams: 1}},
		{"missing type", ports.QuoteInput{To: "US", WeightGrams: 1}},
		{"missing destination", ports.QuoteInput{Type: "export", WeightGrams: 1}},
		{"negative weight", ports.QuoteInput{To: "US", Type: "export", WeightGrams: -1}},
		{"negative volume", ports.QuoteInput{To: "US", Type: "export", VolumeCm3: floatPtr(-3)}},
		{"negative dimension", ports.QuoteInput{To: "US", Type: "export", Dimensions: &ports.DimensionsInput{LengthCm: -1, WidthCm: 1, HeightCm: 1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Quote(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidQuoteRequest)
		})
	}
}

func TestQuoteService_CatalogUnavailable(t *testing.T) {
	svc := newQuoteSvc(&stubCatalogRepo{err: errors.New("timeout")})

	_, err := svc.Quote(context.Background(), ports.QuoteInput{To: "US", Type: "export", WeightGrams: 1000})

	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestQuoteService_ListCouriersFilters(t *testing.T) {
	svc := newQuoteSvc(&stubCatalogRepo{catalog: sampleCatalog()})
	ctx := context.Background()

	all, err := svc.ListCouriers(ctx, ports.CourierFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	imports, err := svc.ListCouriers(ctx, ports.CourierFilter{Type: "import"})
	require.NoError(t, err)
	require.Len(t, imports, 1)
	assert.Equal(t, "cs_aramex_import", imports[0].ID)

	toGB, err := svc.ListCouriers(ctx, ports.CourierFilter{To: "gb"})
	require.NoError(t, err)
	require.Len(t, toGB, 1)
	assert.Equal(t, "cs_aramex_import", toGB[0].ID)

	_, err = svc.ListCouriers(ctx, ports.CourierFilter{Type: "sideways"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuoteRequest)
}

func TestQuoteService_ListCurrencies(t *testing.T) {
	svc := newQuoteSvc(&stubCatalogRepo{catalog: sampleCatalog()})

	got, err := svc.ListCurrencies(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "USD", got[0].Code)
}

func TestQuoteService_InvalidateCatalog(t *testing.T) {
	repo := &stubCatalogRepo{catalog: sampleCatalog()}
	cache := &stubCatalogCache{}
	svc := NewQuoteService(NewCatalogService(repo, cache, 0, zerolog.Nop()), zerolog.Nop())

	require.NoError(t, svc.InvalidateCatalog(context.Background()))
	assert.Equal(t, 1, cache.invalidated)
}
