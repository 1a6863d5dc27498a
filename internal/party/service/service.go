package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	partymetrics "partysearch/internal/party/metrics"
	"partysearch/internal/party/models"
	"partysearch/internal/party/search"
	"partysearch/internal/platform/tracer"
	"partysearch/internal/sentinel"
	dErrors "partysearch/pkg/domain-errors"
	"partysearch/pkg/requestcontext"
)

// Store is the party record store. InsertIfIDAvailable must check and insert
// under a single lock.
type Store interface {
	Insert(ctx context.Context, parties ...models.Party) error
	InsertIfIDAvailable(ctx context.Context, party models.Party) error
	AllRecords(ctx context.Context) ([]models.Party, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// EventPublisher receives onboarding notifications after the store write.
type EventPublisher interface {
	PublishPartyOnboarded(ctx context.Context, event models.PartyOnboarded) error
}

// IDGenerator returns a fresh candidate party id. Uniqueness is enforced by the store.
type IDGenerator func() string

// RandomPartyID produces ids of the form P-12345678.
func RandomPartyID() string {
	return fmt.Sprintf("P-%d", 10000000+rand.IntN(90000000))
}

const defaultMaxIDAttempts = 5

// Service runs searches and onboarding against a Store.
type Service struct {
	store         Store
	publisher     EventPublisher
	newID         IDGenerator
	maxIDAttempts int
	logger        *slog.Logger
	metrics       *partymetrics.Metrics
	tracer        tracer.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *partymetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func WithEventPublisher(p EventPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithIDGenerator replaces RandomPartyID. attempts bounds how many generated ids
// are tried before onboarding gives up; values below one keep the default.
func WithIDGenerator(gen IDGenerator, attempts int) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
		if attempts > 0 {
			s.maxIDAttempts = attempts
		}
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:         store,
		newID:         RandomPartyID,
		maxIDAttempts: defaultMaxIDAttempts,
		logger:        slog.Default(),
		tracer:        tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search reads a snapshot of the store and returns the requested page.
func (s *Service) Search(ctx context.Context, q models.SearchQuery) (result *models.SearchResult, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanPartySearch,
		tracer.String(tracer.AttrSearchTerm, q.Term),
		tracer.Int(tracer.AttrSearchPage, q.Page),
		tracer.Int(tracer.AttrSearchPageSize, q.PageSize),
	)
	defer func() { span.End(err) }()

	records, err := s.store.AllRecords(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read parties")
	}

	res := search.Search(records, q)
	span.SetAttributes(tracer.Int(tracer.AttrSearchTotal, res.Pagination.TotalResults))
	if s.metrics != nil {
		s.metrics.ObserveSearch(start, res.Pagination.TotalResults)
	}
	return &res, nil
}

// Onboard stores a new party and returns it with its assigned id.
// A missing id is generated; a caller-supplied id that already exists is
// rejected with CodeConflict and the store is left unchanged.
func (s *Service) Onboard(ctx context.Context, candidate *models.Party) (onboarded *models.Party, err error) {
	if candidate == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Party cannot be null.")
	}
	ctx, span := s.tracer.Start(ctx, tracer.SpanPartyOnboard,
		tracer.String(tracer.AttrPartyType, candidate.Type.String()),
		tracer.String(tracer.AttrSanctionsStatus, candidate.SanctionsStatus.String()),
	)
	defer func() { span.End(err) }()

	party := *candidate
	if party.PartyID != "" {
		err = s.store.InsertIfIDAvailable(ctx, party)
		if err != nil {
			return nil, s.translateInsertErr(ctx, err, party.PartyID)
		}
	} else {
		party.PartyID, err = s.insertWithGeneratedID(ctx, party)
		if err != nil {
			return nil, err
		}
	}
	span.SetAttributes(tracer.String(tracer.AttrPartyID, party.PartyID))

	s.logger.InfoContext(ctx, "party onboarded",
		"party_id", party.PartyID,
		"type", party.Type,
		"sanctions_status", party.SanctionsStatus,
		"request_id", requestcontext.RequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.IncrementOnboarded(party.Type.String())
	}
	s.publishOnboarded(ctx, span, party)

	return &party, nil
}

func (s *Service) insertWithGeneratedID(ctx context.Context, party models.Party) (string, error) {
	for attempt := 1; attempt <= s.maxIDAttempts; attempt++ {
		party.PartyID = s.newID()
		err := s.store.InsertIfIDAvailable(ctx, party)
		if err == nil {
			return party.PartyID, nil
		}
		if !errors.Is(err, sentinel.ErrAlreadyUsed) {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to store party")
		}
		s.logger.WarnContext(ctx, "generated party id collided",
			"party_id", party.PartyID,
			"attempt", attempt,
		)
		if s.metrics != nil {
			s.metrics.IncrementIDCollision()
		}
	}
	return "", dErrors.Newf(dErrors.CodeInternal,
		"could not generate a unique party id after %d attempts", s.maxIDAttempts)
}

func (s *Service) translateInsertErr(ctx context.Context, err error, partyID string) error {
	if errors.Is(err, sentinel.ErrAlreadyUsed) || dErrors.HasCode(err, dErrors.CodeConflict) {
		s.logger.InfoContext(ctx, "duplicate party id rejected",
			"party_id", partyID,
			"request_id", requestcontext.RequestID(ctx),
		)
		if s.metrics != nil {
			s.metrics.IncrementDuplicateRejected()
		}
		return dErrors.Newf(dErrors.CodeConflict, "A party with ID '%s' already exists.", partyID)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store party")
}

// publishOnboarded never fails the onboarding; the record is already stored.
func (s *Service) publishOnboarded(ctx context.Context, span tracer.Span, party models.Party) {
	if s.publisher == nil {
		return
	}
	event := models.PartyOnboarded{
		PartyID:         party.PartyID,
		Name:            party.Name,
		Type:            party.Type,
		SanctionsStatus: party.SanctionsStatus,
		OccurredAt:      requestcontext.Now(ctx),
	}
	if err := s.publisher.PublishPartyOnboarded(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish party event",
			"party_id", party.PartyID,
			"event_type", event.EventType(),
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.IncrementPublishFailure()
		}
		return
	}
	span.AddEvent(tracer.EventPartyPublished, tracer.String(tracer.AttrPartyID, party.PartyID))
}

// BulkLoad appends parties without uniqueness checks.
func (s *Service) BulkLoad(ctx context.Context, parties []models.Party) (err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanPartyBulkLoad, tracer.Int(tracer.AttrBulkSize, len(parties)))
	defer func() { span.End(err) }()

	if len(parties) == 0 {
		return nil
	}
	if err = s.store.Insert(ctx, parties...); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load parties")
	}
	s.logger.InfoContext(ctx, "parties bulk loaded", "count", len(parties))
	if s.metrics != nil {
		s.metrics.AddBulkLoaded(len(parties))
	}
	return nil
}

// Reset removes every party from the store.
func (s *Service) Reset(ctx context.Context) (err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanPartyReset)
	defer func() { span.End(err) }()

	if err = s.store.Clear(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear parties")
	}
	s.logger.InfoContext(ctx, "party store cleared")
	return nil
}

// Count reports how many parties are stored.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count parties")
	}
	return n, nil
}
