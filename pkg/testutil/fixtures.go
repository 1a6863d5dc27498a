package testutil

import (
	"fmt"

	"partysearch/internal/party/models"
)

// PartyBuilder provides a fluent interface for building test parties.
type PartyBuilder struct {
	party models.Party
}

func NewPartyBuilder() *PartyBuilder {
	return &PartyBuilder{
		party: models.Party{
			PartyID:         "P-10000001",
			Name:            "Test Party",
			Type:            models.PartyTypeIndividual,
			SanctionsStatus: models.SanctionsStatusApproved,
			MatchScore:      "0.5",
		},
	}
}

func (b *PartyBuilder) WithID(partyID string) *PartyBuilder {
	b.party.PartyID = partyID
	return b
}

func (b *PartyBuilder) WithName(name string) *PartyBuilder {
	b.party.Name = name
	return b
}

func (b *PartyBuilder) WithType(t models.PartyType) *PartyBuilder {
	b.party.Type = t
	return b
}

func (b *PartyBuilder) WithStatus(st models.SanctionsStatus) *PartyBuilder {
	b.party.SanctionsStatus = st
	return b
}

func (b *PartyBuilder) WithMatchScore(score string) *PartyBuilder {
	b.party.MatchScore = models.MatchScore(score)
	return b
}

func (b *PartyBuilder) Build() models.Party {
	return b.party
}

// NumberedParties returns n individuals named "Party 01".."Party n" with ids P-01..P-n.
func NumberedParties(n int) []models.Party {
	out := make([]models.Party, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, NewPartyBuilder().
			WithID(fmt.Sprintf("P-%02d", i)).
			WithName(fmt.Sprintf("Party %02d", i)).
			Build())
	}
	return out
}
