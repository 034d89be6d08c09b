package handler

import "github.com/shopspring/decimal"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type dimensionsRequest struct {
	LengthCm float64 `json:"length_cm" validate:"gt=0"`
	WidthCm  float64 `json:"width_cm"  validate:"gt=0"`
	HeightCm float64 `json:"height_cm" validate:"gt=0"`
}

// quoteRequest is the body of POST /v1/quotes. Weight is in grams.
type quoteRequest struct {
	From             string             `json:"from"               validate:"omitempty,len=2"`
	To               string             `json:"to"                 validate:"required,len=2"`
	CourierServiceID string             `json:"courier_service_id"`
	Type             string             `json:"type"               validate:"required,direction"`
	Weight           float64            `json:"weight"             validate:"gte=0"`
	VolumeCm3        *float64           `json:"volume_cm3"         validate:"omitempty,gte=0"`
	Dimensions       *dimensionsRequest `json:"dimensions"`
}

type batchQuoteRequest struct {
	Quotes []quoteRequest `json:"quotes" validate:"required,min=1,max=100,dive"`
}

type quoteOffer struct {
	CourierServiceID string          `json:"courier_service_id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	ImageURL         string          `json:"image_url,omitempty"`
	Instruction      string          `json:"instruction,omitempty"`
	TranshipmentTime string          `json:"transhipment_time,omitempty"`
	FinalWeight      decimal.Decimal `json:"final_weight"    swaggertype:"string" example:"3"`
	FinalPrice       decimal.Decimal `json:"final_price"     swaggertype:"string" example:"40"`
	DimensionPrice   decimal.Decimal `json:"dimension_price" swaggertype:"string" example:"0"`
	WeightPrice      decimal.Decimal `json:"weight_price"    swaggertype:"string" example:"40"`
	Currency         string          `json:"currency"`
}

type quoteResponse struct {
	QuoteID       string       `json:"quote_id"`
	From          string       `json:"from,omitempty"`
	To            string       `json:"to"`
	Type          string       `json:"type"`
	Weight        float64      `json:"weight"`
	VolumeCm3     float64      `json:"volume_cm3"`
	Transportable bool         `json:"transportable"`
	Prices        []quoteOffer `json:"prices"`
	Best          *quoteOffer  `json:"best,omitempty"`
}

type courierResponse struct {
	CourierServiceID string   `json:"courier_service_id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	ImageURL         string   `json:"image_url,omitempty"`
	TranshipmentTime string   `json:"transhipment_time,omitempty"`
	Type             string   `json:"type"`
	MinWeight        float64  `json:"min_weight"`
	MaxWeight        float64  `json:"max_weight"`
	AddingValue      float64  `json:"adding_value"`
	Countries        []string `json:"countries"`
}

type currencyResponse struct {
	ExchangeCurrencyID string  `json:"exchange_currency_id"`
	Name               string  `json:"name,omitempty"`
	Code               string  `json:"currency_code"`
	Value              float64 `json:"value"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

type batchQuoteItem struct {
	Index int            `json:"index"`
	Quote *quoteResponse `json:"quote,omitempty"`
	Error string         `json:"error,omitempty"`
}

type batchQuoteResponse struct {
	Items []batchQuoteItem `json:"items"`
}
