package pricing

import "github.com/shopspring/decimal"

var gramsPerKg = decimal.NewFromInt(1000)

// AdjustWeight returns the billable weight for a courier: at least minWeight,
// otherwise weight rounded up to the next multiple of addingValue.
//
// addingValue must be positive; Calculate drops couriers where it is not.
func AdjustWeight(weight, minWeight, addingValue decimal.Decimal) decimal.Decimal {
	if weight.LessThan(minWeight) {
		return minWeight
	}
	return weight.Div(addingValue).Ceil().Mul(addingValue)
}

// GramsToKg converts a declared weight in grams to kilograms.
func GramsToKg(grams float64) decimal.Decimal {
	return decimal.NewFromFloat(grams).Div(gramsPerKg)
}
