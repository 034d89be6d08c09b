package handler

import "github.com/buy2send/shipping-rates/internal/core/domain"

// shipmentEnvelope peeks at the discriminator before the body is decoded
// into its variant.
type shipmentEnvelope struct {
	ShipmentType domain.ShipmentType `json:"shipmentType"`
}

// shipmentCheckResponse is returned when a submission passes every rule.
type shipmentCheckResponse struct {
	Valid         bool                `json:"valid"`
	ShipmentType  domain.ShipmentType `json:"shipmentType"`
	Shipment      domain.Submission   `json:"shipment" swaggertype:"object"`
	ReceiverPhone domain.PhoneNumber  `json:"receiverPhone"`
	PickupPhone   *domain.PhoneNumber `json:"pickupPhone,omitempty"`
	Quote         *quoteResponse      `json:"quote,omitempty"`
}

// violationsResponse documents the 422 body rendered by the error handler.
type violationsResponse struct {
	Error      string                  `json:"error"`
	Violations []domain.FieldViolation `json:"violations"`
}
