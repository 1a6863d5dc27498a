package models

import "strings"

// Optional holds a value that may be absent. A zero Optional is "none", which
// keeps "no filter" distinct from "filter on the zero value".
type Optional[T comparable] struct {
	value T
	set   bool
}

func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// Matches reports whether v satisfies the filter; an unset filter matches everything.
func (o Optional[T]) Matches(v T) bool {
	return !o.set || o.value == v
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// SearchQuery is the typed search input. Page and PageSize are expected to be
// positive; the transport layer applies defaults before building a query.
type SearchQuery struct {
	Term            string
	Type            Optional[PartyType]
	SanctionsStatus Optional[SanctionsStatus]
	Page            int
	PageSize        int
}

// HasTerm reports whether the term narrows the result set; blank terms match everything.
func (q SearchQuery) HasTerm() bool {
	return strings.TrimSpace(q.Term) != ""
}

// Pagination describes the window returned by a search.
type Pagination struct {
	TotalResults int `json:"totalResults"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	PageSize     int `json:"pageSize"`
}

// SearchResult is one page of parties plus the metadata needed to fetch the others.
type SearchResult struct {
	Parties    []Party
	Pagination Pagination
}
