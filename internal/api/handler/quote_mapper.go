package handler

import (
	"github.com/buy2send/shipping-rates/internal/core/domain"
	"github.com/buy2send/shipping-rates/internal/core/ports"
)

// --- Request → Service input ---

func toQuoteInput(req quoteRequest) ports.QuoteInput {
	in := ports.QuoteInput{
		From:             req.From,
		To:               req.To,
		CourierServiceID: req.CourierServiceID,
		Type:             req.Type,
		WeightGrams:      req.Weight,
		VolumeCm3:        req.VolumeCm3,
	}
	if req.Dimensions != nil {
		in.Dimensions = &ports.DimensionsInput{
			LengthCm: req.Dimensions.LengthCm,
			WidthCm:  req.Dimensions.WidthCm,
			HeightCm: req.Dimensions.HeightCm,
		}
	}
	return in
}

// --- Service output → Response ---

func toQuoteResponse(r *ports.QuoteResult) quoteResponse {
	resp := quoteResponse{
		QuoteID:       r.QuoteID,
		From:          r.From,
		To:            r.To,
		Type:          string(r.Type),
		Weight:        r.WeightGrams,
		VolumeCm3:     r.VolumeCm3,
		Transportable: r.Transportable,
		Prices:        make([]quoteOffer, 0, len(r.Prices)),
	}
	for _, q := range r.Prices {
		resp.Prices = append(resp.Prices, toQuoteOffer(q))
	}
	if r.Best != nil {
		best := toQuoteOffer(*r.Best)
		resp.Best = &best
	}
	return resp
}

func toQuoteOffer(q domain.Quote) quoteOffer {
	return quoteOffer{
		CourierServiceID: q.CourierServiceID,
		Name:             q.Name,
		Description:      q.Description,
		ImageURL:         q.ImageURL,
		Instruction:      q.Instruction,
		TranshipmentTime: q.TranshipmentTime,
		FinalWeight:      q.FinalWeight,
		FinalPrice:       q.FinalPrice,
		DimensionPrice:   q.DimensionPrice,
		WeightPrice:      q.WeightPrice,
		Currency:         q.Currency,
	}
}

func toCourierResponse(c domain.CourierService) courierResponse {
	countries := make([]string, 0, len(c.Countries))
	for _, cz := range c.Countries {
		countries = append(countries, cz.Code)
	}
	return courierResponse{
		CourierServiceID: c.ID,
		Name:             c.Name,
		Description:      c.Description,
		ImageURL:         c.ImageURL,
		TranshipmentTime: c.TranshipmentTime,
		Type:             string(c.Type),
		MinWeight:        c.MinWeight,
		MaxWeight:        c.MaxWeight,
		AddingValue:      c.AddingValue,
		Countries:        countries,
	}
}

func toCurrencyResponse(c domain.Currency) currencyResponse {
	return currencyResponse{
		ExchangeCurrencyID: c.ID,
		Name:               c.Name,
		Code:               c.Code,
		Value:              c.Value,
	}
}
