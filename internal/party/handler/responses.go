package handler

import (
	"fmt"

	"partysearch/internal/party/models"
)

// SearchResponse is the body of the search routes. Message is empty unless
// the returned page has no parties.
type SearchResponse struct {
	Data       []models.Party    `json:"data"`
	Pagination models.Pagination `json:"pagination"`
	Message    string            `json:"message"`
}

func toSearchResponse(term string, res *models.SearchResult) *SearchResponse {
	resp := &SearchResponse{
		Data:       res.Parties,
		Pagination: res.Pagination,
	}
	if resp.Data == nil {
		resp.Data = []models.Party{}
	}
	if len(resp.Data) == 0 {
		resp.Message = fmt.Sprintf("No parties found matching '%s'", term)
	}
	return resp
}
