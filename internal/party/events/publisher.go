// Package events publishes party lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"partysearch/internal/party/models"
	"partysearch/internal/platform/kafka/producer"
	"partysearch/pkg/requestcontext"
)

const (
	HeaderEventType = "event_type"
	HeaderRequestID = "request_id"
)

// Producer is the subset of the Kafka producer the publisher needs.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// KafkaPublisher writes events as JSON records keyed by party id.
type KafkaPublisher struct {
	producer Producer
	topic    string
}

func NewKafkaPublisher(p Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: p, topic: topic}
}

func (k *KafkaPublisher) PublishPartyOnboarded(ctx context.Context, event models.PartyOnboarded) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventType(), err)
	}

	headers := map[string]string{HeaderEventType: event.EventType()}
	if reqID := requestcontext.RequestID(ctx); reqID != "" {
		headers[HeaderRequestID] = reqID
	}

	return k.producer.Produce(ctx, &producer.Message{
		Topic:   k.topic,
		Key:     []byte(event.PartyID),
		Value:   payload,
		Headers: headers,
	})
}

// LogPublisher logs events instead of shipping them anywhere.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (l *LogPublisher) PublishPartyOnboarded(ctx context.Context, event models.PartyOnboarded) error {
	l.logger.DebugContext(ctx, "party event",
		"event_type", event.EventType(),
		"party_id", event.PartyID,
		"sanctions_status", event.SanctionsStatus,
	)
	return nil
}
