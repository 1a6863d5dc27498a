// Package search filters, orders and pages a snapshot of party records.
// It holds no state and never touches the store directly.
package search

import (
	"slices"
	"strings"

	"partysearch/internal/party/models"
)

// Search applies q to records and returns the requested page.
//
// Records are filtered by term (case-insensitive substring of name or id),
// type and sanctions status, then stable-sorted by name using byte-wise
// comparison so ties keep their insertion order. TotalResults counts every
// match before paging; TotalPages is zero when nothing matches.
// A page or page size below one yields an empty window instead of failing.
func Search(records []models.Party, q models.SearchQuery) models.SearchResult {
	matched := Filter(records, q)
	slices.SortStableFunc(matched, func(a, b models.Party) int {
		return strings.Compare(a.Name, b.Name)
	})

	total := len(matched)
	return models.SearchResult{
		Parties: Window(matched, q.Page, q.PageSize),
		Pagination: models.Pagination{
			TotalResults: total,
			TotalPages:   TotalPages(total, q.PageSize),
			CurrentPage:  q.Page,
			PageSize:     q.PageSize,
		},
	}
}

// Filter returns the records matching every predicate in q, in input order.
func Filter(records []models.Party, q models.SearchQuery) []models.Party {
	term := ""
	if q.HasTerm() {
		term = strings.ToLower(q.Term)
	}

	out := make([]models.Party, 0, len(records))
	for _, p := range records {
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		if !q.Type.Matches(p.Type) || !q.SanctionsStatus.Matches(p.SanctionsStatus) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesTerm(p models.Party, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(p.PartyID), lowerTerm)
}

// Window returns the page-th slice of pageSize items (pages start at 1).
func Window(sorted []models.Party, page, pageSize int) []models.Party {
	if page < 1 || pageSize < 1 || len(sorted) == 0 {
		return []models.Party{}
	}
	// compare page indexes before multiplying so very large pages cannot overflow
	if page-1 > (len(sorted)-1)/pageSize {
		return []models.Party{}
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(sorted)-start)
	out := make([]models.Party, end-start)
	copy(out, sorted[start:end])
	return out
}

// TotalPages is ceil(total/pageSize), or zero when there is nothing to page.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
