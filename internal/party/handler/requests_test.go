package handler

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partysearch/internal/party/models"
	dErrors "partysearch/pkg/domain-errors"
	"partysearch/pkg/validation"
)

func TestParseSearchQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.SearchQuery
	}{
		{
			name: "defaults",
			raw:  "",
			want: models.SearchQuery{Page: 1, PageSize: 10},
		},
		{
			name: "all parameters",
			raw:  "query=smith&type=individual&sanctionsStatus=ConfirmedMatch&page=3&pageSize=25",
			want: models.SearchQuery{
				Term:            "smith",
				Type:            models.Some(models.PartyTypeIndividual),
				SanctionsStatus: models.Some(models.SanctionsStatusConfirmedMatch),
				Page:            3,
				PageSize:        25,
			},
		},
		{
			name: "searchTerm alias",
			raw:  "searchTerm=acme",
			want: models.SearchQuery{Term: "acme", Page: 1, PageSize: 10},
		},
		{
			name: "query wins over searchTerm",
			raw:  "query=&searchTerm=acme",
			want: models.SearchQuery{Term: "", Page: 1, PageSize: 10},
		},
		{
			name: "malformed values are lenient",
			raw:  "type=&sanctionsStatus=nope&page=x&pageSize=1.5",
			want: models.SearchQuery{Page: 1, PageSize: 10},
		},
		{
			name: "numeric out of range values pass through",
			raw:  "page=0&pageSize=-5",
			want: models.SearchQuery{Page: 0, PageSize: -5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ParseSearchQuery(values))
		})
	}
}

func TestOnboardPartyRequest(t *testing.T) {
	t.Run("normalize and convert", func(t *testing.T) {
		req := &OnboardPartyRequest{
			PartyID:         "  P-1 ",
			Name:            " John ",
			Type:            "individual",
			SanctionsStatus: "Pending Review",
			MatchScore:      "0.4",
		}
		req.Normalize()
		require.NoError(t, req.Validate())

		assert.Equal(t, &models.Party{
			PartyID:         "P-1",
			Name:            "John",
			Type:            models.PartyTypeIndividual,
			SanctionsStatus: models.SanctionsStatusPendingReview,
			MatchScore:      "0.4",
		}, req.ToParty())
	})

	t.Run("validation codes", func(t *testing.T) {
		var nilReq *OnboardPartyRequest
		err := nilReq.Validate()
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))

		err = (&OnboardPartyRequest{Type: "Individual", SanctionsStatus: "Approved"}).Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, "name is required", err.Error())

		err = (&OnboardPartyRequest{
			Name:            strings.Repeat("x", validation.MaxPartyNameLength+1),
			Type:            "Individual",
			SanctionsStatus: "Approved",
		}).Validate()
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Contains(t, err.Error(), "name exceeds max length")
	})
}

func TestBulkLoadRequest(t *testing.T) {
	req := BulkLoadRequest{
		{PartyID: "P-1", Name: "A", Type: "Individual", SanctionsStatus: "Approved"},
		{PartyID: "P-2", Name: "B", Type: "Organization", SanctionsStatus: "Escalated"},
	}
	req.Normalize()
	require.NoError(t, req.Validate())
	parties := req.ToParties()
	require.Len(t, parties, 2)
	assert.Equal(t, models.PartyTypeOrganization, parties[1].Type)

	bad := BulkLoadRequest{
		{PartyID: "P-1", Name: "A", Type: "Individual", SanctionsStatus: "Approved"},
		{PartyID: "P-2", Name: "B", Type: "Robot", SanctionsStatus: "Approved"},
	}
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(t, err.Error(), "item 1:")

	tooMany := make(BulkLoadRequest, validation.MaxBulkParties+1)
	err = tooMany.Validate()
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(t, err.Error(), "too many parties")
}
