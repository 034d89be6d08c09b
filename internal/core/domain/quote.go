package domain

import "github.com/shopspring/decimal"

// Quote is the price one courier service charges for a shipment.
// FinalPrice is always max(WeightPrice, DimensionPrice).
type Quote struct {
	CourierServiceID string
	Name             string
	Description      string
	ImageURL         string
	Instruction      string
	TranshipmentTime string
	FinalWeight      decimal.Decimal // billable weight in kg
	FinalPrice       decimal.Decimal
	DimensionPrice   decimal.Decimal
	WeightPrice      decimal.Decimal
	Currency         string
}

// PriceCalculation is the engine output. Prices is empty when the shipment
// is not transportable.
type PriceCalculation struct {
	Transportable bool
	Prices        []Quote
}
