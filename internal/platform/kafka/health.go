package kafka

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// HealthChecker reports whether any configured broker accepts TCP connections.
type HealthChecker struct {
	brokers []string
	timeout time.Duration
}

func NewHealthChecker(brokers []string) *HealthChecker {
	return &HealthChecker{
		brokers: brokers,
		timeout: 3 * time.Second,
	}
}

// Check returns nil as soon as one broker is reachable.
func (h *HealthChecker) Check(ctx context.Context) error {
	if len(h.brokers) == 0 {
		return errors.New("kafka brokers not configured")
	}

	var lastErr error
	for _, broker := range h.brokers {
		dialer := net.Dialer{Timeout: h.timeout}
		conn, err := dialer.DialContext(ctx, "tcp", broker)
		if err != nil {
			lastErr = err
			continue
		}
		_ = conn.Close()
		return nil
	}
	return fmt.Errorf("no kafka brokers reachable: %w", lastErr)
}

func (h *HealthChecker) Name() string {
	return "kafka"
}
