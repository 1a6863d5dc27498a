package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SearchesTotal        *prometheus.CounterVec
	SearchDuration       prometheus.Histogram
	SearchResults        prometheus.Histogram
	PartiesOnboarded     *prometheus.CounterVec
	DuplicatesRejected   prometheus.Counter
	IDCollisionRetries   prometheus.Counter
	PartiesBulkLoaded    prometheus.Counter
	EventPublishFailures prometheus.Counter
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the collectors on reg so tests can use an isolated registry.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SearchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "party_search_searches_total",
			Help: "Total number of party searches, by whether any record matched",
		}, []string{"outcome"}),
		SearchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "party_search_search_duration_seconds",
			Help:    "Duration of filter, sort and page over the store snapshot",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		SearchResults: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "party_search_search_total_results",
			Help:    "Number of records matching a search before paging",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		}),
		PartiesOnboarded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "party_search_parties_onboarded_total",
			Help: "Total number of parties onboarded, by party type",
		}, []string{"type"}),
		DuplicatesRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "party_search_duplicate_ids_rejected_total",
			Help: "Onboarding attempts rejected because the party id already exists",
		}),
		IDCollisionRetries: f.NewCounter(prometheus.CounterOpts{
			Name: "party_search_generated_id_collisions_total",
			Help: "Generated party ids that collided and were regenerated",
		}),
		PartiesBulkLoaded: f.NewCounter(prometheus.CounterOpts{
			Name: "party_search_parties_bulk_loaded_total",
			Help: "Total number of parties inserted through bulk loads",
		}),
		EventPublishFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "party_search_event_publish_failures_total",
			Help: "Party events that could not be published",
		}),
	}
}

func (m *Metrics) ObserveSearch(start time.Time, totalResults int) {
	outcome := "hit"
	if totalResults == 0 {
		outcome = "miss"
	}
	m.SearchesTotal.WithLabelValues(outcome).Inc()
	m.SearchDuration.Observe(time.Since(start).Seconds())
	m.SearchResults.Observe(float64(totalResults))
}

func (m *Metrics) IncrementOnboarded(partyType string) {
	m.PartiesOnboarded.WithLabelValues(partyType).Inc()
}

func (m *Metrics) IncrementDuplicateRejected() {
	m.DuplicatesRejected.Inc()
}

func (m *Metrics) IncrementIDCollision() {
	m.IDCollisionRetries.Inc()
}

func (m *Metrics) AddBulkLoaded(n int) {
	m.PartiesBulkLoaded.Add(float64(n))
}

func (m *Metrics) IncrementPublishFailure() {
	m.EventPublishFailures.Inc()
}
