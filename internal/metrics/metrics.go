// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cafe",
		Name:      "provider_requests_total",
		Help:      "Calls made to external providers, by provider operation and outcome.",
	}, []string{"operation", "outcome"})

	RecordsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cafe",
		Name:      "records_dropped_total",
		Help:      "Provider records dropped during collection, by reason.",
	}, []string{"reason"})

	CollectedPlaces = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "cafe",
		Name:      "catalog_places",
		Help:      "Places in the current catalog snapshot.",
	})

	Interactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cafe",
		Name:      "interactions_total",
		Help:      "Interaction store mutations, by type.",
	}, []string{"type"})
)

// Outcome labels.
const (
	OK    = "ok"
	Error = "error"
)
