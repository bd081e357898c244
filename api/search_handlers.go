package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/arcturus-labs/property-search/internal/errors"
	"github.com/arcturus-labs/property-search/internal/interpret"
	"github.com/arcturus-labs/property-search/services"
)

// SearchResponse is the engine result plus the interpretation the boundary
// applied, when there was one.
type SearchResponse struct {
	services.SearchResult
	InterpretedQuery *services.Interpretation `json:"interpreted_query,omitempty"`
}

// SearchHandler handles GET /api/search. The q parameter is free text routed
// through the interpreter; every other parameter is an explicit criterion.
// Interpreted structured fields take precedence over explicit values, and an
// interpretation failure silently degrades to the explicit criteria.
func (api *API) SearchHandler(c *gin.Context) {
	params := searchParams{
		Q:            c.Query("q"),
		Title:        c.Query("title"),
		Description:  c.Query("description"),
		PropertyType: c.Query("property_type"),
		Bedrooms:     c.Query("bedrooms"),
		MinPrice:     c.Query("min_price"),
		MaxPrice:     c.Query("max_price"),
		MinSqft:      c.Query("min_sqft"),
		MaxSqft:      c.Query("max_sqft"),
		Sort:         c.Query("sort"),
		Page:         c.Query("page"),
		PerPage:      c.Query("per_page"),
	}

	query, result := ValidateSearchParams(params, api.maxPerPage)
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	query, interpretation := api.interpretAndMerge(c.Request.Context(), query, params.Q)

	searchResult, err := api.searcher.Search(interpret.ApplyTextFallback(query, params.Q))
	if err != nil {
		SendSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		SearchResult:     searchResult,
		InterpretedQuery: interpretation,
	})
}

// InterpretHandler handles GET /api/interpret, exposing the raw
// interpretation of a free-text query without running a search.
func (api *API) InterpretHandler(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		result := &ValidationResult{Valid: true}
		result.AddError("q", "q is required")
		SendValidationError(c, result)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), api.interpretTimeout)
	defer cancel()

	interpretation, err := api.interpreter.Interpret(ctx, q)
	if err != nil {
		if errors.Is(err, apperrors.ErrInterpreterUnavailable) {
			SendError(c, http.StatusServiceUnavailable, ErrorCodeInternalError,
				"Query interpretation is not configured")
			return
		}
		SendInternalError(c, "interpret query", err)
		return
	}

	c.JSON(http.StatusOK, interpretation)
}

// interpretAndMerge runs the interpreter over rawQuery and merges the result
// onto query. Failures are absorbed here: the engine never sees them and the
// search proceeds with the explicit criteria alone.
func (api *API) interpretAndMerge(ctx context.Context, query services.SearchQuery, rawQuery string) (services.SearchQuery, *services.Interpretation) {
	if rawQuery == "" {
		return query, nil
	}

	interpretCtx, cancel := context.WithTimeout(ctx, api.interpretTimeout)
	defer cancel()

	interp, err := api.interpreter.Interpret(interpretCtx, rawQuery)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInterpreterUnavailable) {
			api.logger.Warn("query interpretation failed, searching with explicit criteria",
				"query", rawQuery, "error", err)
		}
		return query, nil
	}

	return interpret.Merge(query, interp), interp
}
