// Package search implements the property search core: relevance scoring,
// conjunctive filtering with a relevance fallback, self-excluding facet
// counts, sorting, and pagination.
package search

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arcturus-labs/property-search/model"
	"github.com/arcturus-labs/property-search/services"
	"github.com/arcturus-labs/property-search/store"
)

const defaultPerPage = 10

// Service implements services.Searcher over an immutable catalog. All request
// processing is pure with respect to the catalog, so a single Service is safe
// for concurrent use without locking.
type Service struct {
	catalog *store.Catalog
	logger  *slog.Logger
}

// NewService creates a new search Service.
func NewService(catalog *store.Catalog, logger *slog.Logger) (*Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{catalog: catalog, logger: logger}, nil
}

// Search runs the full pipeline for one request:
// score once, filter once for the result set, run the four self-excluding
// facet passes against the scored (not yet filtered) catalog, then sort and
// paginate the primary filtered set.
//
// The query is assumed pre-validated by the boundary; Search never fails on
// empty result sets, only on programmer error.
func (s *Service) Search(query services.SearchQuery) (services.SearchResult, error) {
	startTime := time.Now()

	page := query.Page
	if page <= 0 {
		page = 1
	}
	perPage := query.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	sortKey := query.Sort
	if sortKey == "" {
		sortKey = services.SortRelevance
	}

	scored := scoreRecords(s.catalog.Records(), query.Title, query.Description)

	filtered := applyFilters(scored, query, exclusions{})
	total := len(filtered)

	facets := computeFacets(scored, query)

	sortResults(filtered, sortKey)

	startIndex := (page - 1) * perPage
	endIndex := startIndex + perPage
	var results []model.ScoredProperty
	if startIndex < total {
		if endIndex > total {
			endIndex = total
		}
		results = filtered[startIndex:endIndex]
	} else {
		// A page past the end is an empty page, not an error.
		results = []model.ScoredProperty{}
	}

	queryID := uuid.New().String()
	took := time.Since(startTime).Milliseconds()

	s.logger.Info("search completed",
		"query_id", queryID,
		"title", query.Title,
		"description", query.Description,
		"sort", string(sortKey),
		"page", page,
		"per_page", perPage,
		"total", total,
		"returned", len(results),
		"took_ms", took,
	)

	return services.SearchResult{
		Results: results,
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Facets:  facets,
		Took:    took,
		QueryID: queryID,
	}, nil
}

// CatalogFacets computes unconstrained facet counts over the whole catalog,
// used to seed filter UIs before any search has run.
func (s *Service) CatalogFacets() services.Facets {
	scored := scoreRecords(s.catalog.Records(), "", "")
	return computeFacets(scored, services.SearchQuery{})
}
