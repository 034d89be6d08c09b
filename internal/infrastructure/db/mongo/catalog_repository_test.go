package mongo

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

func TestCatalogRepository_LoadRoundTrip(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set; skipping integration test")
	}

	ctx := context.Background()
	client, db, err := Connect(ctx, Config{URI: uri, Database: "shipping_rates_test"})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	_, err = db.Collection(collectionCourierServices).InsertOne(ctx, domain.CourierService{
		ID:          "cs_dhl_export",
		Name:        "DHL Express",
		Type:        domain.DirectionExport,
		MinWeight:   1,
		MaxWeight:   30,
		AddingValue: 1,
		Countries:   []domain.CountryZone{{Code: "US", Name: "United States", Zone: 1}},
		Rates:       map[string][]domain.RateBreakpoint{"zone1": {{Weight: 5, Price: 40}, {Weight: 1, Price: 20}}},
	})
	require.NoError(t, err)
	_, err = db.Collection(collectionCurrencies).InsertOne(ctx, domain.Currency{ID: "cur_vol", Code: "LKR", Value: 300})
	require.NoError(t, err)

	repo := NewCatalogRepository(db, domain.CatalogOptions{VolumetricCurrencyID: "cur_vol", BaseCurrency: "LKR"})
	require.NoError(t, repo.EnsureIndexes(ctx))
	require.NoError(t, repo.Ping(ctx))

	catalog, err := repo.Load(ctx)

	require.NoError(t, err)
	require.Len(t, catalog.Couriers, 1)
	assert.Equal(t, "cs_dhl_export", catalog.Couriers[0].ID)
	assert.Equal(t, 1.0, catalog.Couriers[0].Rates["zone1"][0].Weight)
	assert.Equal(t, 300.0, catalog.VolumetricRate)
	assert.Equal(t, "LKR", catalog.BaseCurrency)
}
