// Package pricing turns a shipment's route and physical attributes into
// courier price quotes. Every function is pure: the courier catalog is
// passed in as a snapshot and never modified.
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/buy2send/shipping-rates/internal/core/domain"
)

// VolumetricPricePerCm3 is the base-currency price per cm³ shared by every
// courier when pricing by volume.
var VolumetricPricePerCm3 = decimal.NewFromFloat(2.5)

// Input is a single pricing request.
type Input struct {
	Origin           string // ISO country code the shipment leaves from
	To               string // ISO country code of the destination
	CourierServiceID string // optional; restricts pricing to one courier
	Type             domain.Direction
	WeightGrams      float64
	VolumeCm3        float64
}

type candidate struct {
	courier  domain.CourierService
	billable decimal.Decimal
}

// Calculate filters the catalog down to the couriers that can carry the
// shipment and prices each of them. A courier failing any stage is dropped
// without affecting the others. The result is not sorted.
func Calculate(in Input, catalog domain.Catalog) domain.PriceCalculation {
	couriers := catalog.Couriers
	if in.CourierServiceID != "" {
		pinned, ok := catalog.Courier(in.CourierServiceID)
		if !ok {
			return domain.PriceCalculation{}
		}
		couriers = []domain.CourierService{pinned}
	}

	couriers = byDirection(couriers, in.Type)
	if len(couriers) == 0 {
		return domain.PriceCalculation{}
	}

	candidates := byWeight(couriers, GramsToKg(in.WeightGrams))
	if len(candidates) == 0 {
		return domain.PriceCalculation{}
	}

	candidates = byRoute(candidates, in.To)
	if len(candidates) == 0 {
		return domain.PriceCalculation{}
	}

	dimensionPrice := decimal.NewFromFloat(in.VolumeCm3).
		Mul(VolumetricPricePerCm3).
		Mul(rateOrOne(catalog.VolumetricRate))

	quotes := make([]domain.Quote, 0, len(candidates))
	for _, c := range candidates {
		zonePrice, ok := FindZonePrice(c.courier, in.To, c.billable)
		if !ok {
			continue
		}

		currencyValue := decimal.NewFromInt(1)
		currencyCode := catalog.BaseCurrency
		if cur, found := catalog.Currency(c.courier.ExchangeCurrencyID); found {
			currencyValue = decimal.NewFromFloat(cur.Value)
			currencyCode = cur.Code
		}

		weightPrice := zonePrice.Mul(currencyValue)
		quotes = append(quotes, domain.Quote{
			CourierServiceID: c.courier.ID,
			Name:             c.courier.Name,
			Description:      c.courier.Description,
			ImageURL:         c.courier.ImageURL,
			Instruction:      c.courier.Instruction,
			TranshipmentTime: c.courier.TranshipmentTime,
			FinalWeight:      c.billable,
			FinalPrice:       decimal.Max(weightPrice, dimensionPrice),
			DimensionPrice:   dimensionPrice,
			WeightPrice:      weightPrice,
			Currency:         currencyCode,
		})
	}

	if len(quotes) == 0 {
		return domain.PriceCalculation{}
	}
	return domain.PriceCalculation{Transportable: true, Prices: quotes}
}

// SortByFinalPrice orders quotes cheapest first. Ties keep catalog order.
func SortByFinalPrice(quotes []domain.Quote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].FinalPrice.LessThan(quotes[j].FinalPrice)
	})
}

// Best returns the cheapest quote.
func Best(quotes []domain.Quote) (domain.Quote, bool) {
	if len(quotes) == 0 {
		return domain.Quote{}, false
	}
	best := quotes[0]
	for _, q := range quotes[1:] {
		if q.FinalPrice.LessThan(best.FinalPrice) {
			best = q
		}
	}
	return best, true
}

func byDirection(couriers []domain.CourierService, dir domain.Direction) []domain.CourierService {
	out := make([]domain.CourierService, 0, len(couriers))
	for _, c := range couriers {
		if c.Type == dir {
			out = append(out, c)
		}
	}
	return out
}

// byWeight computes each courier's own billable weight and keeps the ones
// whose weight band contains it.
func byWeight(couriers []domain.CourierService, weightKg decimal.Decimal) []candidate {
	out := make([]candidate, 0, len(couriers))
	for _, c := range couriers {
		adding := decimal.NewFromFloat(c.AddingValue)
		if !adding.IsPositive() {
			continue
		}
		minW := decimal.NewFromFloat(c.MinWeight)
		maxW := decimal.NewFromFloat(c.MaxWeight)

		billable := AdjustWeight(weightKg, minW, adding)
		if billable.LessThan(minW) || billable.GreaterThan(maxW) {
			continue
		}
		out = append(out, candidate{courier: c, billable: billable})
	}
	return out
}

func byRoute(candidates []candidate, to string) []candidate {
	out := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.courier.Serves(to) {
			out = append(out, c)
		}
	}
	return out
}

func rateOrOne(rate float64) decimal.Decimal {
	if rate <= 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromFloat(rate)
}
