//go:build integration

// Package containers provides testcontainers-based fixtures for integration tests.
package containers

import (
	"sync"
	"testing"
)

// Manager starts containers lazily and shares them across suites in a package.
type Manager struct {
	mu    sync.Mutex
	kafka *KafkaContainer
}

var (
	globalManager *Manager
	initOnce      sync.Once
)

func GetManager() *Manager {
	initOnce.Do(func() {
		globalManager = &Manager{}
	})
	return globalManager
}

// GetKafka returns the shared Kafka container, starting it on first use.
func (m *Manager) GetKafka(t *testing.T) *KafkaContainer {
	t.Helper()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.kafka == nil {
		m.kafka = NewKafkaContainer(t)
	}
	return m.kafka
}
