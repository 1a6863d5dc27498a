package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partysearch/internal/party/models"
	"partysearch/pkg/platform/circuit"
)

type countingPublisher struct {
	calls int
	err   error
}

func (c *countingPublisher) PublishPartyOnboarded(context.Context, models.PartyOnboarded) error {
	c.calls++
	return c.err
}

func TestFailoverPublisher(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	newFailover := func(primary, fallback Publisher) (*FailoverPublisher, *circuit.Breaker) {
		b := circuit.New("kafka-events",
			circuit.WithFailureThreshold(2),
			circuit.WithSuccessThreshold(1),
			circuit.WithCooldown(time.Minute),
			circuit.WithClock(clock),
		)
		return NewFailoverPublisher(primary, fallback, b, logger), b
	}

	t.Run("healthy primary skips the fallback", func(t *testing.T) {
		primary, fallback := &countingPublisher{}, &countingPublisher{}
		f, _ := newFailover(primary, fallback)

		require.NoError(t, f.PublishPartyOnboarded(ctx, onboardedEvent()))
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 0, fallback.calls)
	})

	t.Run("primary failure is returned and copied to the fallback", func(t *testing.T) {
		boom := errors.New("broker down")
		primary, fallback := &countingPublisher{err: boom}, &countingPublisher{}
		f, _ := newFailover(primary, fallback)

		err := f.PublishPartyOnboarded(ctx, onboardedEvent())
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, fallback.calls)
	})

	t.Run("open circuit diverts without calling the primary", func(t *testing.T) {
		primary, fallback := &countingPublisher{err: errors.New("broker down")}, &countingPublisher{}
		f, b := newFailover(primary, fallback)

		_ = f.PublishPartyOnboarded(ctx, onboardedEvent())
		_ = f.PublishPartyOnboarded(ctx, onboardedEvent())
		require.Equal(t, circuit.StateOpen, b.State())

		err := f.PublishPartyOnboarded(ctx, onboardedEvent())
		assert.ErrorIs(t, err, ErrDiverted)
		assert.Equal(t, 2, primary.calls)
		assert.Equal(t, 3, fallback.calls)
	})

	t.Run("recovered primary closes the circuit after the cooldown", func(t *testing.T) {
		primary, fallback := &countingPublisher{err: errors.New("broker down")}, &countingPublisher{}
		f, b := newFailover(primary, fallback)
		_ = f.PublishPartyOnboarded(ctx, onboardedEvent())
		_ = f.PublishPartyOnboarded(ctx, onboardedEvent())

		now = now.Add(time.Minute)
		primary.err = nil
		require.NoError(t, f.PublishPartyOnboarded(ctx, onboardedEvent()))
		assert.Equal(t, circuit.StateClosed, b.State())
	})
}
