package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSearch(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.ObserveSearch(time.Now(), 3)
	m.ObserveSearch(time.Now(), 0)
	m.ObserveSearch(time.Now(), 7)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.SearchesTotal.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SearchesTotal.WithLabelValues("miss")))
}

func TestOnboardingCounters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.IncrementOnboarded("Individual")
	m.IncrementOnboarded("Individual")
	m.IncrementOnboarded("Organization")
	m.IncrementDuplicateRejected()
	m.IncrementIDCollision()
	m.AddBulkLoaded(25)
	m.IncrementPublishFailure()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.PartiesOnboarded.WithLabelValues("Individual")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PartiesOnboarded.WithLabelValues("Organization")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DuplicatesRejected))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.IDCollisionRetries))
	assert.Equal(t, float64(25), testutil.ToFloat64(m.PartiesBulkLoaded))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventPublishFailures))
}
