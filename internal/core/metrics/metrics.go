// Package metrics defines and registers all custom Prometheus metrics for the
// shipping rate service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register with the default Prometheus registry on package init
// via promauto; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shipping_rates"

// ── Quote metrics ─────────────────────────────────────────────────────────────

// QuotesTotal counts priced quote requests.
// Label:
//   - result: "transportable" or "not_transportable"
var QuotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_total",
		Help:      "Total number of quote requests priced, by outcome.",
	},
	[]string{"result"},
)

// QuoteOffers observes how many courier offers a quote returned.
var QuoteOffers = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_offers",
		Help:      "Number of eligible courier offers per quote.",
		Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
	},
)

// QuoteCalculationDuration measures the pure rate engine run, excluding the
// catalog fetch.
var QuoteCalculationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_calculation_duration_seconds",
		Help:      "Duration of a single rate engine calculation.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogCacheTotal counts catalog cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Shipment metrics ──────────────────────────────────────────────────────────

// ShipmentValidationsTotal counts shipment submission checks.
// Labels:
//   - result: "valid" or "invalid"
//   - type: "link", "warehouse" or "export"
var ShipmentValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipment_validations_total",
		Help:      "Total number of shipment submissions checked, by result and type.",
	},
	[]string{"result", "type"},
)
