package seeder

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"partysearch/internal/party/models"
	"partysearch/internal/party/service"
	"partysearch/internal/party/store"
)

const validSeed = `[
  {"partyId": "P12345678", "name": "John Smith", "type": "Individual", "sanctionsStatus": "Pending Review", "matchScore": "85%"},
  {"partyId": "P87654321", "name": "Acme Corporation", "type": "organization", "sanctionsStatus": "approved", "matchScore": 0.12},
  {"partyId": "P11111111", "name": "No Enums"}
]`

type SeederSuite struct {
	suite.Suite
	store  *store.InMemory
	seeder *Seeder
	ctx    context.Context
}

func TestSeederSuite(t *testing.T) {
	suite.Run(t, new(SeederSuite))
}

func (s *SeederSuite) SetupTest() {
	s.store = store.NewInMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.seeder = New(service.New(s.store, service.WithLogger(logger)), logger)
	s.ctx = context.Background()
}

func (s *SeederSuite) records() []models.Party {
	all, err := s.store.AllRecords(s.ctx)
	s.Require().NoError(err)
	return all
}

func (s *SeederSuite) TestSeedFromJSON_LoadsAllRecords() {
	s.True(s.seeder.SeedFromJSON(s.ctx, []byte(validSeed)))

	all := s.records()
	s.Require().Len(all, 3)
	s.Equal(models.SanctionsStatusPendingReview, all[0].SanctionsStatus)
	s.Equal(models.MatchScore("85%"), all[0].MatchScore)
	s.Equal(models.PartyTypeOrganization, all[1].Type)
	s.Equal(models.MatchScore("0.12"), all[1].MatchScore)
	s.Equal(models.PartyTypeIndividual, all[2].Type)
	s.Equal(models.SanctionsStatusApproved, all[2].SanctionsStatus)
}

func (s *SeederSuite) TestSeedFromJSON_Rejections() {
	tests := []struct {
		name string
		json string
	}{
		{name: "invalid json", json: `{not json`},
		{name: "object instead of array", json: `{"partyId":"P-1"}`},
		{name: "empty array", json: `[]`},
		{name: "null", json: `null`},
		{name: "missing party id", json: `[{"name":"John"}]`},
		{name: "blank name", json: `[{"partyId":"P-1","name":"  "}]`},
		{name: "unknown status", json: `[{"partyId":"P-1","name":"John","sanctionsStatus":"Cleared"}]`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.False(s.seeder.SeedFromJSON(s.ctx, []byte(tt.json)))
			s.Empty(s.records())
		})
	}
}

func (s *SeederSuite) TestSeedFromJSON_SkipsNonEmptyStore() {
	s.Require().NoError(s.store.Insert(s.ctx, models.Party{PartyID: "P-0", Name: "Existing"}))

	s.False(s.seeder.SeedFromJSON(s.ctx, []byte(validSeed)))
	s.Len(s.records(), 1)
}

func (s *SeederSuite) TestSeedFromJSON_OnlyOnce() {
	s.True(s.seeder.SeedFromJSON(s.ctx, []byte(validSeed)))
	s.False(s.seeder.SeedFromJSON(s.ctx, []byte(validSeed)))
	s.Len(s.records(), 3)
}

func (s *SeederSuite) TestSeedFromFile() {
	s.Run("missing file", func() {
		s.False(s.seeder.SeedFromFile(s.ctx, filepath.Join(s.T().TempDir(), "missing.json")))
	})

	s.Run("valid file", func() {
		path := filepath.Join(s.T().TempDir(), "parties.json")
		s.Require().NoError(os.WriteFile(path, []byte(validSeed), 0o600))
		s.True(s.seeder.SeedFromFile(s.ctx, path))
		s.Len(s.records(), 3)
	})
}

type failingLoader struct {
	count    int
	countErr error
	loadErr  error
	loaded   int
}

func (f *failingLoader) Count(context.Context) (int, error) { return f.count, f.countErr }

func (f *failingLoader) BulkLoad(_ context.Context, parties []models.Party) error {
	f.loaded += len(parties)
	return f.loadErr
}

func TestSeed_LoaderFailures(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("count error", func(t *testing.T) {
		loader := &failingLoader{countErr: assert.AnError}
		assert.False(t, New(loader, logger).SeedFromJSON(ctx, []byte(validSeed)))
		assert.Zero(t, loader.loaded)
	})

	t.Run("bulk load error", func(t *testing.T) {
		loader := &failingLoader{loadErr: assert.AnError}
		assert.False(t, New(loader, logger).SeedFromJSON(ctx, []byte(validSeed)))
	})

	t.Run("single bulk load", func(t *testing.T) {
		loader := &failingLoader{}
		require.True(t, New(loader, logger).SeedFromJSON(ctx, []byte(validSeed)))
		assert.Equal(t, 3, loader.loaded)
	})
}
