package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

// FindZonePrice resolves the base price a courier charges to ship
// billableWeight kg to countryCode. It reports false when the courier does
// not serve the country, the zone has no rate card, or the weight is above
// the heaviest breakpoint.
func FindZonePrice(courier domain.CourierService, countryCode string, billableWeight decimal.Decimal) (decimal.Decimal, bool) {
	country, ok := courier.Country(countryCode)
	if !ok {
		return decimal.Zero, false
	}

	// Breakpoints are sorted ascending by weight; the first one that covers
	// the billable weight sets the price.
	for _, bp := range courier.Rates[domain.ZoneKey(country.Zone)] {
		if decimal.NewFromFloat(bp.Weight).GreaterThanOrEqual(billableWeight) {
			return decimal.NewFromFloat(bp.Price), true
		}
	}
	return decimal.Zero, false
}
