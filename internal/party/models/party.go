package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	dErrors "partysearch/pkg/domain-errors"
	s "partysearch/pkg/string"
)

// Party is a screened entity with a sanctions disposition.
// Records are never mutated once stored; updates are out of scope.
type Party struct {
	PartyID         string          `json:"partyId"`
	Name            string          `json:"name"`
	Type            PartyType       `json:"type"`
	SanctionsStatus SanctionsStatus `json:"sanctionsStatus"`
	MatchScore      MatchScore      `json:"matchScore"`
}

type PartyType string

const (
	PartyTypeIndividual   PartyType = "Individual"
	PartyTypeOrganization PartyType = "Organization"
)

func (t PartyType) String() string {
	return string(t)
}

func (t PartyType) IsValid() bool {
	return t == PartyTypeIndividual || t == PartyTypeOrganization
}

// ParsePartyType matches case-insensitively and ignores spacing.
func ParsePartyType(raw string) (PartyType, error) {
	key := strings.ToLower(s.Squash(strings.TrimSpace(raw)))
	for _, t := range []PartyType{PartyTypeIndividual, PartyTypeOrganization} {
		if strings.ToLower(string(t)) == key {
			return t, nil
		}
	}
	return "", dErrors.New(dErrors.CodeValidation, "type must be one of [Individual Organization]")
}

type SanctionsStatus string

const (
	SanctionsStatusApproved       SanctionsStatus = "Approved"
	SanctionsStatusPendingReview  SanctionsStatus = "PendingReview"
	SanctionsStatusEscalated      SanctionsStatus = "Escalated"
	SanctionsStatusConfirmedMatch SanctionsStatus = "ConfirmedMatch"
	SanctionsStatusFalsePositive  SanctionsStatus = "FalsePositive"
)

// SanctionsStatuses lists every status in declaration order.
var SanctionsStatuses = []SanctionsStatus{
	SanctionsStatusApproved,
	SanctionsStatusPendingReview,
	SanctionsStatusEscalated,
	SanctionsStatusConfirmedMatch,
	SanctionsStatusFalsePositive,
}

func (st SanctionsStatus) String() string {
	return string(st)
}

func (st SanctionsStatus) IsValid() bool {
	for _, known := range SanctionsStatuses {
		if st == known {
			return true
		}
	}
	return false
}

// ParseSanctionsStatus accepts the canonical names as well as display forms
// such as "Pending Review" or "false_positive".
func ParseSanctionsStatus(raw string) (SanctionsStatus, error) {
	key := strings.ToLower(s.Squash(strings.TrimSpace(raw)))
	for _, st := range SanctionsStatuses {
		if strings.ToLower(string(st)) == key {
			return st, nil
		}
	}
	return "", dErrors.New(dErrors.CodeValidation,
		"sanctionsStatus must be one of [Approved PendingReview Escalated ConfirmedMatch FalsePositive]")
}

// UnmarshalJSON lets seed files and request bodies use any accepted spelling.
func (t *PartyType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePartyType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (st *SanctionsStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSanctionsStatus(raw)
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

// MatchScore is the screening confidence attached to a party. The engine never
// interprets it: a JSON number (0.95) or string ("80%") is carried through as text.
type MatchScore string

func (m MatchScore) String() string {
	return string(m)
}

func (m *MatchScore) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*m = MatchScore(raw)
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "matchScore must be a number or a string")
	}
	*m = MatchScore(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}
