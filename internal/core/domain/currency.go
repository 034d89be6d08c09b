package domain

import "sort"

// Currency is an exchange-rate record. Value converts a base-currency amount
// into this currency: price_in_base * Value = price_in_this_currency.
type Currency struct {
	ID    string  `json:"exchange_currency_id" bson:"exchange_currency_id"`
	Name  string  `json:"name" bson:"name"`
	Code  string  `json:"currency_code" bson:"currency_code"`
	Value float64 `json:"value" bson:"value"`
}

// Catalog is an immutable snapshot of everything the rate engine prices
// against. It is passed by value into every calculation and never mutated.
type Catalog struct {
	Couriers   []CourierService `json:"couriers"`
	Currencies []Currency       `json:"currencies"`
	// VolumetricRate converts the base volumetric price into the quoted
	// currency. Zero means "not configured" and is treated as 1.
	VolumetricRate float64 `json:"volumetric_rate"`
	// BaseCurrency is the code reported on quotes whose courier has no
	// matching currency record.
	BaseCurrency string `json:"base_currency"`
}

// Currency looks up a currency record by its exchange_currency_id.
func (c Catalog) Currency(id string) (Currency, bool) {
	if id == "" {
		return Currency{}, false
	}
	for _, cur := range c.Currencies {
		if cur.ID == id {
			return cur, true
		}
	}
	return Currency{}, false
}

// Courier looks up a courier service by id.
func (c Catalog) Courier(id string) (CourierService, bool) {
	for _, cs := range c.Couriers {
		if cs.ID == id {
			return cs, true
		}
	}
	return CourierService{}, false
}

// CatalogOptions carries deployment settings applied while assembling a
// catalog from stored records.
type CatalogOptions struct {
	VolumetricCurrencyID string
	BaseCurrency         string
}

// NewCatalog assembles a snapshot from stored records. Rate cards are
// copied and ordered by ascending weight, and VolumetricRate is taken from
// the currency record named by opts.VolumetricCurrencyID when it exists.
func NewCatalog(couriers []CourierService, currencies []Currency, opts CatalogOptions) *Catalog {
	out := make([]CourierService, len(couriers))
	for i, c := range couriers {
		rates := make(map[string][]RateBreakpoint, len(c.Rates))
		for zone, card := range c.Rates {
			sorted := append([]RateBreakpoint(nil), card...)
			sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Weight < sorted[b].Weight })
			rates[zone] = sorted
		}
		c.Rates = rates
		out[i] = c
	}

	catalog := &Catalog{
		Couriers:     out,
		Currencies:   append([]Currency(nil), currencies...),
		BaseCurrency: opts.BaseCurrency,
	}
	if cur, ok := catalog.Currency(opts.VolumetricCurrencyID); ok {
		catalog.VolumetricRate = cur.Value
	}
	return catalog
}
