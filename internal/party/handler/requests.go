package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"partysearch/internal/party/models"
	dErrors "partysearch/pkg/domain-errors"
	s "partysearch/pkg/string"
	"partysearch/pkg/validation"
)

// ParseSearchQuery reads search parameters leniently: unknown enum values drop
// the filter and non-numeric paging falls back to page 1 of 10.
// The term comes from "query", or "searchTerm" when "query" is absent.
func ParseSearchQuery(values url.Values) models.SearchQuery {
	term := values.Get("query")
	if _, ok := values["query"]; !ok {
		term = values.Get("searchTerm")
	}

	q := models.SearchQuery{
		Term:     term,
		Page:     intOr(values.Get("page"), models.DefaultPage),
		PageSize: intOr(values.Get("pageSize"), models.DefaultPageSize),
	}
	if t, err := models.ParsePartyType(values.Get("type")); err == nil {
		q.Type = models.Some(t)
	}
	if st, err := models.ParseSanctionsStatus(values.Get("sanctionsStatus")); err == nil {
		q.SanctionsStatus = models.Some(st)
	}
	return q
}

func intOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

// OnboardPartyRequest is the body of POST /api/parties. PartyID is optional.
type OnboardPartyRequest struct {
	PartyID         string            `json:"partyId"`
	Name            string            `json:"name" validate:"required,notblank"`
	Type            string            `json:"type" validate:"required"`
	SanctionsStatus string            `json:"sanctionsStatus" validate:"required"`
	MatchScore      models.MatchScore `json:"matchScore"`
}

func (r *OnboardPartyRequest) Normalize() {
	if r == nil {
		return
	}
	s.TrimStrings(&r.PartyID, &r.Name, &r.Type, &r.SanctionsStatus)
}

func (r *OnboardPartyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := validation.Validate(r); err != nil {
		return err
	}
	if err := validation.CheckStringLength("party_id", r.PartyID, validation.MaxPartyIDLength); err != nil {
		return err
	}
	if err := validation.CheckStringLength("name", r.Name, validation.MaxPartyNameLength); err != nil {
		return err
	}
	if err := validation.CheckStringLength("match_score", string(r.MatchScore), validation.MaxMatchScoreLength); err != nil {
		return err
	}
	if _, err := models.ParsePartyType(r.Type); err != nil {
		return err
	}
	if _, err := models.ParseSanctionsStatus(r.SanctionsStatus); err != nil {
		return err
	}
	return nil
}

// ToParty converts a validated request into a domain party.
func (r *OnboardPartyRequest) ToParty() *models.Party {
	// Validate has already accepted both values
	t, _ := models.ParsePartyType(r.Type)
	st, _ := models.ParseSanctionsStatus(r.SanctionsStatus)
	return &models.Party{
		PartyID:         r.PartyID,
		Name:            r.Name,
		Type:            t,
		SanctionsStatus: st,
		MatchScore:      r.MatchScore,
	}
}

// BulkLoadRequest is the body of POST /admin/parties/bulk. Every record needs an id.
type BulkLoadRequest []OnboardPartyRequest

func (r *BulkLoadRequest) Normalize() {
	if r == nil {
		return
	}
	for i := range *r {
		(*r)[i].Normalize()
	}
}

func (r *BulkLoadRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := validation.CheckSliceCount("parties", len(*r), validation.MaxBulkParties); err != nil {
		return err
	}
	for i := range *r {
		item := &(*r)[i]
		if item.PartyID == "" {
			return dErrors.Newf(dErrors.CodeValidation, "item %d: party_id is required", i)
		}
		if err := item.Validate(); err != nil {
			return dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("item %d: %s", i, err.Error()))
		}
	}
	return nil
}

func (r *BulkLoadRequest) ToParties() []models.Party {
	out := make([]models.Party, len(*r))
	for i := range *r {
		out[i] = *(*r)[i].ToParty()
	}
	return out
}
