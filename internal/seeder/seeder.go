// Package seeder loads an initial party data set from JSON.
package seeder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"partysearch/internal/party/models"
	"partysearch/pkg/validation"
)

// PartyLoader is satisfied by the party service.
type PartyLoader interface {
	Count(ctx context.Context) (int, error)
	BulkLoad(ctx context.Context, parties []models.Party) error
}

// record is the seed file shape. Missing type and status fall back to
// Individual and Approved.
type record struct {
	PartyID         string                 `json:"partyId" validate:"required,notblank"`
	Name            string                 `json:"name" validate:"required,notblank"`
	Type            models.PartyType       `json:"type"`
	SanctionsStatus models.SanctionsStatus `json:"sanctionsStatus"`
	MatchScore      models.MatchScore      `json:"matchScore"`
}

func (r record) toParty() models.Party {
	p := models.Party{
		PartyID:         r.PartyID,
		Name:            r.Name,
		Type:            r.Type,
		SanctionsStatus: r.SanctionsStatus,
		MatchScore:      r.MatchScore,
	}
	if p.Type == "" {
		p.Type = models.PartyTypeIndividual
	}
	if p.SanctionsStatus == "" {
		p.SanctionsStatus = models.SanctionsStatusApproved
	}
	return p
}

// Seeder populates an empty store. It never overwrites existing data.
type Seeder struct {
	loader PartyLoader
	logger *slog.Logger
}

func New(loader PartyLoader, logger *slog.Logger) *Seeder {
	return &Seeder{loader: loader, logger: logger}
}

// SeedFromFile reads path and seeds it. It reports whether any data was loaded;
// every failure is logged rather than returned.
func (s *Seeder) SeedFromFile(ctx context.Context, path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.ErrorContext(ctx, "seed data file not found", "path", path)
		} else {
			s.logger.ErrorContext(ctx, "failed to read seed data file", "path", path, "error", err)
		}
		return false
	}
	return s.seed(ctx, data, "path", path)
}

// SeedFromJSON seeds from an in-memory JSON array of parties.
func (s *Seeder) SeedFromJSON(ctx context.Context, data []byte) bool {
	return s.seed(ctx, data)
}

func (s *Seeder) seed(ctx context.Context, data []byte, logAttrs ...any) bool {
	var records []record
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&records); err != nil {
		s.logger.ErrorContext(ctx, "failed to parse seed data", append(logAttrs, "error", err)...)
		return false
	}
	if len(records) == 0 {
		s.logger.WarnContext(ctx, "no parties found in seed data", logAttrs...)
		return false
	}
	if err := validation.ValidateEach(records); err != nil {
		s.logger.ErrorContext(ctx, "invalid seed data", append(logAttrs, "error", err)...)
		return false
	}

	existing, err := s.loader.Count(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to inspect party store", "error", err)
		return false
	}
	if existing != 0 {
		s.logger.InfoContext(ctx, "party store already contains data, skipping seed", "existing", existing)
		return false
	}

	parties := make([]models.Party, len(records))
	for i, r := range records {
		parties[i] = r.toParty()
	}
	if err := s.loader.BulkLoad(ctx, parties); err != nil {
		s.logger.ErrorContext(ctx, "failed to seed parties", "error", err)
		return false
	}

	s.logger.InfoContext(ctx, "seeded parties", append(logAttrs, "count", len(parties))...)
	return true
}
