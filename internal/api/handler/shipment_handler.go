package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buy2send/shipping-rates/internal/core/domain"
	"github.com/buy2send/shipping-rates/internal/core/ports"
)

const maxShipmentBody = 1 << 20

// ShipmentHandler handles HTTP requests for shipment submissions.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Check handles POST /v1/shipments/check.
//
// @Summary      Validate a shipment submission
// @Description  Decodes the body by its shipmentType (link, warehouse or export), reports every broken rule, and prices the shipment when a courier is pinned.
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body      object                 true  "Link, warehouse or export shipment"
// @Success      200   {object}  shipmentCheckResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  violationsResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/shipments/check [post]
func (h *ShipmentHandler) Check(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxShipmentBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sub, err := decodeSubmission(body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Check(c.Request().Context(), sub)
	if err != nil {
		return err
	}

	resp := shipmentCheckResponse{
		Valid:         true,
		ShipmentType:  sub.Type(),
		Shipment:      result.Shipment.Submission,
		ReceiverPhone: result.Shipment.ReceiverPhone,
		PickupPhone:   result.Shipment.PickupPhone,
	}
	if result.Quote != nil {
		q := toQuoteResponse(result.Quote)
		resp.Quote = &q
	}
	return c.JSON(http.StatusOK, resp)
}

// decodeSubmission reads the shipmentType discriminator and decodes the body
// into the matching variant.
func decodeSubmission(body []byte) (domain.Submission, error) {
	var env shipmentEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("invalid payload")
	}

	switch env.ShipmentType {
	case domain.ShipmentTypeLink:
		var s domain.LinkShipment
		if err := decodeVariant(body, &s); err != nil {
			return nil, err
		}
		return s, nil
	case domain.ShipmentTypeWarehouse:
		var s domain.WarehouseShipment
		if err := decodeVariant(body, &s); err != nil {
			return nil, err
		}
		return s, nil
	case domain.ShipmentTypeExport:
		var s domain.ExportShipment
		if err := decodeVariant(body, &s); err != nil {
			return nil, err
		}
		return s, nil
	case "":
		return nil, fmt.Errorf("shipmentType is required")
	default:
		return nil, fmt.Errorf("unknown shipmentType %q", env.ShipmentType)
	}
}

func decodeVariant(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("invalid payload")
	}
	return nil
}
