package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buy2send/shipping-rates/internal/core/domain"
	"github.com/buy2send/shipping-rates/internal/core/ports"
)

// QuoteHandler exposes the rate engine and the catalog it prices against.
type QuoteHandler struct {
	service ports.QuoteService
	batcher ports.QuoteBatcher
}

func NewQuoteHandler(service ports.QuoteService, batcher ports.QuoteBatcher) *QuoteHandler {
	return &QuoteHandler{service: service, batcher: batcher}
}

// Create handles POST /v1/quotes.
//
// @Summary      Price a shipment
// @Description  Returns every eligible courier offer, cheapest first. A shipment no courier can carry is a 200 with transportable=false.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      quoteRequest  true  "Shipment to price (weight in grams)"
// @Success      200   {object}  quoteResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Create(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Quote(c.Request().Context(), toQuoteInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuoteResponse(result))
}

// CreateBatch handles POST /v1/quotes/batch.
//
// @Summary      Price several shipments
// @Description  Items are priced independently; a bad item carries its own error and does not fail the batch.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      batchQuoteRequest  true  "Shipments to price"
// @Success      200   {object}  batchQuoteResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/quotes/batch [post]
func (h *QuoteHandler) CreateBatch(c echo.Context) error {
	var req batchQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	inputs := make([]ports.QuoteInput, 0, len(req.Quotes))
	for _, q := range req.Quotes {
		inputs = append(inputs, toQuoteInput(q))
	}

	items := h.batcher.QuoteBatch(c.Request().Context(), inputs)

	resp := batchQuoteResponse{Items: make([]batchQuoteItem, 0, len(items))}
	for i, item := range items {
		out := batchQuoteItem{Index: i}
		if item.Err != nil {
			out.Error = batchItemError(item.Err)
		} else {
			q := toQuoteResponse(item.Result)
			out.Quote = &q
		}
		resp.Items = append(resp.Items, out)
	}
	return c.JSON(http.StatusOK, resp)
}

func batchItemError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidQuoteRequest):
		return err.Error()
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return domain.ErrCatalogUnavailable.Error()
	default:
		return "internal server error"
	}
}

// ListCouriers handles GET /v1/couriers.
//
// @Summary      List courier services
// @Tags         catalog
// @Produce      json
// @Param        type  query     string  false  "import or export"
// @Param        to    query     string  false  "ISO country code the courier must serve"
// @Success      200   {object}  listResponse[courierResponse]
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/couriers [get]
func (h *QuoteHandler) ListCouriers(c echo.Context) error {
	couriers, err := h.service.ListCouriers(c.Request().Context(), ports.CourierFilter{
		Type: c.QueryParam("type"),
		To:   c.QueryParam("to"),
	})
	if err != nil {
		return err
	}

	items := make([]courierResponse, 0, len(couriers))
	for _, cs := range couriers {
		items = append(items, toCourierResponse(cs))
	}
	return c.JSON(http.StatusOK, listResponse[courierResponse]{Items: items, Count: len(items)})
}

// ListCurrencies handles GET /v1/currencies.
//
// @Summary      List exchange-rate records
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  listResponse[currencyResponse]
// @Failure      503  {object}  errorResponse
// @Router       /v1/currencies [get]
func (h *QuoteHandler) ListCurrencies(c echo.Context) error {
	currencies, err := h.service.ListCurrencies(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]currencyResponse, 0, len(currencies))
	for _, cur := range currencies {
		items = append(items, toCurrencyResponse(cur))
	}
	return c.JSON(http.StatusOK, listResponse[currencyResponse]{Items: items, Count: len(items)})
}

// InvalidateCatalog handles DELETE /v1/catalog/cache.
//
// @Summary      Drop the cached catalog snapshot
// @Description  Mounted only when ADMIN_TOKEN is set.
// @Tags         catalog
// @Security     AdminToken
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/catalog/cache [delete]
func (h *QuoteHandler) InvalidateCatalog(c echo.Context) error {
	if err := h.service.InvalidateCatalog(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
