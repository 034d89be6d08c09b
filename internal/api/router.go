package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/buy2send/shipping-rates/docs"
	"github.com/buy2send/shipping-rates/internal/api/handler"
	"github.com/buy2send/shipping-rates/internal/api/middleware"
	"github.com/buy2send/shipping-rates/internal/core/ports"
)

// Dependencies are the services the HTTP layer serves.
type Dependencies struct {
	Quotes    ports.QuoteService
	Batcher   ports.QuoteBatcher
	Shipments ports.ShipmentService
	// Readiness lists what /health/ready pings.
	Readiness []handler.Dependency
	// Registry receives the HTTP metrics. Nil uses the default registry.
	Registry *prometheus.Registry
	// AdminToken guards the catalog admin routes as a bearer token. When
	// empty those routes are not mounted at all.
	AdminToken string
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	metricsCfg := echoprometheus.MiddlewareConfig{Subsystem: "http"}
	metricsHandler := echoprometheus.NewHandler()
	if deps.Registry != nil {
		metricsCfg.Registerer = deps.Registry
		metricsHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Registry})
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsCfg))

	// --- Dependencies ---
	quoteHandler := handler.NewQuoteHandler(deps.Quotes, deps.Batcher)
	shipmentHandler := handler.NewShipmentHandler(deps.Shipments)

	// --- Health probes, metrics and docs ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Readiness...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- v1 ---
	v1 := e.Group("/v1")
	v1.POST("/quotes", quoteHandler.Create)
	v1.POST("/quotes/batch", quoteHandler.CreateBatch)
	v1.GET("/couriers", quoteHandler.ListCouriers)
	v1.GET("/currencies", quoteHandler.ListCurrencies)
	v1.POST("/shipments/check", shipmentHandler.Check)

	// --- admin ---
	if deps.AdminToken != "" {
		v1.DELETE("/catalog/cache", quoteHandler.InvalidateCatalog, adminAuth(deps.AdminToken))
	}

	return e
}

// adminAuth accepts "Authorization: Bearer <token>" matching token.
func adminAuth(token string) echo.MiddlewareFunc {
	return echomiddleware.KeyAuthWithConfig(echomiddleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(key string, _ echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1, nil
		},
		ErrorHandler: func(_ error, _ echo.Context) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "admin token required")
		},
	})
}
