package domain

import (
	"strconv"
	"strings"
)

// Direction is the shipping direction a courier service operates in.
type Direction string

const (
	DirectionImport Direction = "import"
	DirectionExport Direction = "export"
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == DirectionImport || d == DirectionExport
}

// CountryZone maps a country served by a courier to its pricing zone.
type CountryZone struct {
	Code string `json:"code" bson:"code"`
	Name string `json:"name" bson:"name"`
	Zone int    `json:"zone" bson:"zone"`
}

// RateBreakpoint is one step of a zone rate card: shipments up to Weight kg
// cost Price in the courier's currency.
type RateBreakpoint struct {
	Weight float64 `json:"weight" bson:"weight"`
	Price  float64 `json:"price" bson:"price"`
}

// CourierService is a shippable product offered by a carrier.
//
// Rates is keyed by ZoneKey and every list is sorted ascending by weight.
// The catalog producer guarantees the ordering.
type CourierService struct {
	ID                 string                      `json:"courier_service_id" bson:"courier_service_id"`
	Name               string                      `json:"name" bson:"name"`
	Description        string                      `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL           string                      `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Instruction        string                      `json:"instruction,omitempty" bson:"instruction,omitempty"`
	TranshipmentTime   string                      `json:"transhipment_time,omitempty" bson:"transhipment_time,omitempty"`
	Type               Direction                   `json:"type" bson:"type"`
	MinWeight          float64                     `json:"min_weight" bson:"min_weight"`
	MaxWeight          float64                     `json:"max_weight" bson:"max_weight"`
	AddingValue        float64                     `json:"adding_value" bson:"adding_value"`
	ExchangeCurrencyID string                      `json:"exchange_currency_id,omitempty" bson:"exchange_currency_id,omitempty"`
	Countries          []CountryZone               `json:"countries" bson:"countries"`
	Rates              map[string][]RateBreakpoint `json:"rates" bson:"rates"`
}

// ZoneKey returns the Rates key for a zone number, e.g. "zone3".
func ZoneKey(zone int) string {
	return "zone" + strconv.Itoa(zone)
}

// Country returns the zone entry for code. Codes compare case-insensitively.
func (c CourierService) Country(code string) (CountryZone, bool) {
	for _, cz := range c.Countries {
		if strings.EqualFold(cz.Code, code) {
			return cz, true
		}
	}
	return CountryZone{}, false
}

// Serves reports whether the courier ships to or from the given country.
func (c CourierService) Serves(code string) bool {
	_, ok := c.Country(code)
	return ok
}
