package models

import "time"

// PartyOnboarded is published after a party has been written to the store.
type PartyOnboarded struct {
	PartyID         string          `json:"party_id"`
	Name            string          `json:"name"`
	Type            PartyType       `json:"type"`
	SanctionsStatus SanctionsStatus `json:"sanctions_status"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

func (PartyOnboarded) EventType() string {
	return "party.onboarded"
}
