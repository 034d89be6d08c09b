package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

func TestCatalogRepository_Load(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	ctx := context.Background()
	pool, err := NewPool(ctx, dbURL)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewCatalogRepository(pool, domain.CatalogOptions{VolumetricCurrencyID: "cur_it_vol", BaseCurrency: "LKR"})
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.Ping(ctx))

	_, err = pool.Exec(ctx, `
		INSERT INTO courier_services
		    (courier_service_id, name, type, min_weight, max_weight, adding_value, countries, rates)
		VALUES ('cs_it_export', 'IT Express', 'export', 1, 30, 0.5,
		        '[{"code":"US","name":"United States","zone":1}]',
		        '{"zone1":[{"weight":5,"price":40},{"weight":1,"price":20}]}')
		ON CONFLICT (courier_service_id) DO NOTHING`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
		INSERT INTO currencies (exchange_currency_id, currency_code, value)
		VALUES ('cur_it_vol', 'LKR', 300)
		ON CONFLICT (exchange_currency_id) DO NOTHING`)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM courier_services WHERE courier_service_id = 'cs_it_export'`)
		_, _ = pool.Exec(context.Background(), `DELETE FROM currencies WHERE exchange_currency_id = 'cur_it_vol'`)
	})

	catalog, err := repo.Load(ctx)

	require.NoError(t, err)
	c, ok := catalog.Courier("cs_it_export")
	require.True(t, ok)
	assert.Equal(t, domain.DirectionExport, c.Type)
	assert.Equal(t, 0.5, c.AddingValue)
	assert.True(t, c.Serves("US"))
	assert.Equal(t, 1.0, c.Rates["zone1"][0].Weight)
	assert.Equal(t, 300.0, catalog.VolumetricRate)
}

func TestNewPool_RequiresURL(t *testing.T) {
	_, err := NewPool(context.Background(), "")
	assert.Error(t, err)
}
