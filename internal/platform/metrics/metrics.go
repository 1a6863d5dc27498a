// Package metrics holds process-level collectors and the /metrics endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterStoreSize exposes the current number of stored parties. size is
// called on every scrape.
func RegisterStoreSize(reg prometheus.Registerer, size func() float64) prometheus.GaugeFunc {
	return promauto.With(reg).NewGaugeFunc(prometheus.GaugeOpts{
		Name: "party_search_store_records",
		Help: "Number of party records currently held in the store",
	}, size)
}

// RegisterBuildInfo publishes the running version as a constant gauge.
func RegisterBuildInfo(reg prometheus.Registerer, version, environment string) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "party_search_build_info",
		Help:        "Build and environment of the running process",
		ConstLabels: prometheus.Labels{"version": version, "environment": environment},
	}, func() float64 { return 1 }))
}

// NewRegistry returns a registry with the Go runtime and process collectors attached.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the collectors gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
