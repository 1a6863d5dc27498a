package events

import (
	"context"
	"errors"
	"log/slog"

	"partysearch/internal/party/models"
	"partysearch/pkg/platform/circuit"
)

// ErrDiverted is returned when an event went to the fallback publisher
// because the primary circuit is open.
var ErrDiverted = errors.New("event diverted to fallback publisher")

// Publisher is implemented by every event sink in this package.
type Publisher interface {
	PublishPartyOnboarded(ctx context.Context, event models.PartyOnboarded) error
}

// FailoverPublisher sends events to a primary publisher and diverts them to
// a fallback while the breaker is open.
type FailoverPublisher struct {
	primary  Publisher
	fallback Publisher
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func NewFailoverPublisher(primary, fallback Publisher, breaker *circuit.Breaker, logger *slog.Logger) *FailoverPublisher {
	return &FailoverPublisher{
		primary:  primary,
		fallback: fallback,
		breaker:  breaker,
		logger:   logger,
	}
}

func (f *FailoverPublisher) PublishPartyOnboarded(ctx context.Context, event models.PartyOnboarded) error {
	if !f.breaker.Allow() {
		if err := f.fallback.PublishPartyOnboarded(ctx, event); err != nil {
			return errors.Join(ErrDiverted, err)
		}
		return ErrDiverted
	}

	if err := f.primary.PublishPartyOnboarded(ctx, event); err != nil {
		if change := f.breaker.RecordFailure(); change.Opened {
			f.logger.WarnContext(ctx, "event publisher circuit opened",
				"breaker", f.breaker.Name(),
				"error", err,
			)
		}
		if ferr := f.fallback.PublishPartyOnboarded(ctx, event); ferr != nil {
			return errors.Join(err, ferr)
		}
		return err
	}

	if change := f.breaker.RecordSuccess(); change.Closed {
		f.logger.InfoContext(ctx, "event publisher circuit closed", "breaker", f.breaker.Name())
	}
	return nil
}
