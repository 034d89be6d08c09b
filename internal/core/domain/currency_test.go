package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_SortsRateCardsWithoutTouchingInput(t *testing.T) {
	in := []CourierService{{
		ID:    "cs_1",
		Rates: map[string][]RateBreakpoint{"zone1": {{Weight: 5, Price: 40}, {Weight: 1, Price: 20}}},
	}}

	got := NewCatalog(in, nil, CatalogOptions{BaseCurrency: "LKR"})

	require.Len(t, got.Couriers, 1)
	assert.Equal(t, []RateBreakpoint{{Weight: 1, Price: 20}, {Weight: 5, Price: 40}}, got.Couriers[0].Rates["zone1"])
	assert.Equal(t, 5.0, in[0].Rates["zone1"][0].Weight)
	assert.Equal(t, "LKR", got.BaseCurrency)
}

func TestNewCatalog_VolumetricRate(t *testing.T) {
	currencies := []Currency{
		{ID: "cur_usd", Code: "USD", Value: 1},
		{ID: "cur_vol", Code: "LKR", Value: 300},
	}

	assert.Equal(t, 300.0, NewCatalog(nil, currencies, CatalogOptions{VolumetricCurrencyID: "cur_vol"}).VolumetricRate)
	assert.Zero(t, NewCatalog(nil, currencies, CatalogOptions{VolumetricCurrencyID: "cur_missing"}).VolumetricRate)
	assert.Zero(t, NewCatalog(nil, currencies, CatalogOptions{}).VolumetricRate)
}

func TestCourierService_CountryIsCaseInsensitive(t *testing.T) {
	c := CourierService{Countries: []CountryZone{{Code: "LK", Zone: 3}}}

	cz, ok := c.Country("lk")
	require.True(t, ok)
	assert.Equal(t, 3, cz.Zone)
	assert.Equal(t, "zone3", ZoneKey(cz.Zone))
	assert.False(t, c.Serves("IN"))
}

func TestCatalog_Lookups(t *testing.T) {
	c := Catalog{
		Couriers:   []CourierService{{ID: "cs_1"}},
		Currencies: []Currency{{ID: "cur_usd", Code: "USD"}},
	}

	_, ok := c.Courier("cs_1")
	assert.True(t, ok)
	_, ok = c.Courier("cs_2")
	assert.False(t, ok)
	_, ok = c.Currency("")
	assert.False(t, ok, "empty id never matches")
	cur, ok := c.Currency("cur_usd")
	assert.True(t, ok)
	assert.Equal(t, "USD", cur.Code)
}

func TestShipmentType_Direction(t *testing.T) {
	assert.Equal(t, DirectionImport, ShipmentTypeLink.Direction())
	assert.Equal(t, DirectionImport, ShipmentTypeWarehouse.Direction())
	assert.Equal(t, DirectionExport, ShipmentTypeExport.Direction())
}

func TestValidationError_UnwrapsToValidationFailed(t *testing.T) {
	err := &ValidationError{Violations: []FieldViolation{{Field: "country", Message: "is required"}}}

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "country")
}
