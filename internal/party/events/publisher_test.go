package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partysearch/internal/party/models"
	"partysearch/internal/platform/kafka/producer"
	"partysearch/pkg/requestcontext"
)

type recordingProducer struct {
	messages []*producer.Message
	err      error
}

func (r *recordingProducer) Produce(_ context.Context, msg *producer.Message) error {
	r.messages = append(r.messages, msg)
	return r.err
}

func onboardedEvent() models.PartyOnboarded {
	return models.PartyOnboarded{
		PartyID:         "P-12345678",
		Name:            "John Smith",
		Type:            models.PartyTypeIndividual,
		SanctionsStatus: models.SanctionsStatusPendingReview,
		OccurredAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestKafkaPublisher_PublishPartyOnboarded(t *testing.T) {
	rec := &recordingProducer{}
	pub := NewKafkaPublisher(rec, "party.events")
	ctx := requestcontext.WithRequestID(context.Background(), "req-1")

	require.NoError(t, pub.PublishPartyOnboarded(ctx, onboardedEvent()))
	require.Len(t, rec.messages, 1)

	msg := rec.messages[0]
	assert.Equal(t, "party.events", msg.Topic)
	assert.Equal(t, []byte("P-12345678"), msg.Key)
	assert.Equal(t, map[string]string{HeaderEventType: "party.onboarded", HeaderRequestID: "req-1"}, msg.Headers)
	assert.JSONEq(t, `{
		"party_id": "P-12345678",
		"name": "John Smith",
		"type": "Individual",
		"sanctions_status": "PendingReview",
		"occurred_at": "2026-01-02T03:04:05Z"
	}`, string(msg.Value))
}

func TestKafkaPublisher_OmitsEmptyRequestID(t *testing.T) {
	rec := &recordingProducer{}
	pub := NewKafkaPublisher(rec, "party.events")

	require.NoError(t, pub.PublishPartyOnboarded(context.Background(), onboardedEvent()))
	_, ok := rec.messages[0].Headers[HeaderRequestID]
	assert.False(t, ok)
}

func TestKafkaPublisher_PropagatesProducerError(t *testing.T) {
	rec := &recordingProducer{err: assert.AnError}
	pub := NewKafkaPublisher(rec, "party.events")

	err := pub.PublishPartyOnboarded(context.Background(), onboardedEvent())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestKafkaPublisher_WithNoopProducer(t *testing.T) {
	noop := producer.NewNoop()
	pub := NewKafkaPublisher(noop, "party.events")

	require.NoError(t, pub.PublishPartyOnboarded(context.Background(), onboardedEvent()))
	assert.Equal(t, 1, noop.Produced())
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	require.NoError(t, NewLogPublisher(logger).PublishPartyOnboarded(context.Background(), onboardedEvent()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "party.onboarded", entry["event_type"])
	assert.Equal(t, "P-12345678", entry["party_id"])
}
