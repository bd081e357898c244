package services

import (
	"context"

	"github.com/arcturus-labs/property-search/model"
)

// SearchQuery carries the fully merged, pre-validated criteria for one search
// request. The boundary layer is responsible for validation (enum values, range
// ordering) and for merging interpreted parameters; the engine assumes the
// query it receives is well formed.
type SearchQuery struct {
	// Title and Description are free-text queries scored against the
	// corresponding record fields. Either or both may be empty.
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// PropertyTypes and Bedrooms are categorical constraints. Empty slices mean
	// no constraint. Bedrooms values are decimal strings; non-numeric entries
	// are dropped silently during filtering.
	PropertyTypes []string `json:"property_type,omitempty"`
	Bedrooms      []string `json:"bedrooms,omitempty"`

	// Range bounds are inclusive on both ends. Nil means unbounded.
	MinPrice *int `json:"min_price,omitempty"`
	MaxPrice *int `json:"max_price,omitempty"`
	MinSqft  *int `json:"min_sqft,omitempty"`
	MaxSqft  *int `json:"max_sqft,omitempty"`

	Sort    SortKey `json:"sort,omitempty"`
	Page    int     `json:"page,omitempty"`
	PerPage int     `json:"per_page,omitempty"`
}

// HasTextQuery reports whether a free-text query is present, which controls
// whether the relevance filter applies.
func (q SearchQuery) HasTextQuery() bool {
	return q.Title != "" || q.Description != ""
}

// SortKey selects the result ordering.
type SortKey string

const (
	SortRelevance SortKey = "relevance" // score descending (default)
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNewest    SortKey = "newest" // listing date descending
)

// ParseSortKey validates a raw sort parameter. The empty string maps to the
// relevance default.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case "":
		return SortRelevance, true
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortNewest:
		return SortKey(s), true
	}
	return "", false
}

// Facets bundles the four facet dimensions computed for a search response.
// Bucket labels for the range dimensions are fixed engine constants; the
// property type and bedrooms maps carry whichever values occur in the
// filtered set.
type Facets struct {
	PropertyType     map[string]int `json:"property_type"`
	Bedrooms         map[string]int `json:"bedrooms"`
	PriceRanges      map[string]int `json:"price_ranges"`
	SquareFeetRanges map[string]int `json:"square_feet_ranges"`
}

// SearchResult is the engine's response envelope: one page of scored records,
// the pre-pagination total, and the self-excluding facet counts.
type SearchResult struct {
	Results []model.ScoredProperty `json:"results"`
	Total   int                    `json:"total"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"per_page"`
	Facets  Facets                 `json:"facets"`
	Took    int64                  `json:"took"`     // milliseconds
	QueryID string                 `json:"query_id"` // unique UUID for this search
}

// Searcher is the engine-side contract consumed by the HTTP boundary.
// CatalogFacets serves the facets endpoint without running a full search.
type Searcher interface {
	Search(query SearchQuery) (SearchResult, error)
	CatalogFacets() Facets
}

// Interpretation is the structured output of the query interpreter: the subset
// of SearchQuery fields the interpreter managed to extract from free text.
// Nil/empty fields were not extracted and leave the explicit criteria intact.
type Interpretation struct {
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	PropertyTypes []string `json:"property_type,omitempty"`
	Bedrooms      []string `json:"bedrooms,omitempty"`
	MinPrice      *int     `json:"min_price,omitempty"`
	MaxPrice      *int     `json:"max_price,omitempty"`
	MinSqft       *int     `json:"min_sqft,omitempty"`
	MaxSqft       *int     `json:"max_sqft,omitempty"`
	Sort          string   `json:"sort,omitempty"`
}

// Interpreter converts a free-text query into structured search parameters.
// Implementations perform a network round trip; callers bound it with the
// context and must treat any error as "proceed without interpretation".
type Interpreter interface {
	Interpret(ctx context.Context, q string) (*Interpretation, error)
}

// SearchSummary describes a result set in natural language: a one-to-two
// sentence summary of what the user is searching for plus two to three
// related search ideas they could try next.
type SearchSummary struct {
	Summary     string   `json:"summary"`
	SearchIdeas []string `json:"search_ideas"`
}

// Summarizer generates a SearchSummary from the active criteria and the
// result total. Like Interpreter it performs a network round trip; callers
// bound it with the context and degrade to a canned summary on any error.
type Summarizer interface {
	Summarize(ctx context.Context, q string, query SearchQuery, total int) (*SearchSummary, error)
}
