package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcturus-labs/property-search/services"
)

// fallbackSummary is returned whenever summary generation is unavailable or
// fails; the endpoint never surfaces those failures as errors.
var fallbackSummary = services.SearchSummary{
	Summary:     "Searching for properties matching your criteria.",
	SearchIdeas: []string{},
}

// SummaryRequest carries the criteria and result total of a search the client
// already ran, for which it wants a natural language summary.
type SummaryRequest struct {
	Q string `json:"q"`
	services.SearchQuery
	Total int `json:"total"`
}

// SummaryHandler handles POST /api/summary: it describes the active search in
// one or two sentences and suggests related searches. Summarization is best
// effort; any failure degrades to a canned summary with no search ideas.
func (api *API) SummaryHandler(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), api.interpretTimeout)
	defer cancel()

	summary, err := api.summarizer.Summarize(ctx, req.Q, req.SearchQuery, req.Total)
	if err != nil {
		api.logger.Warn("search summary unavailable, returning default",
			"query", req.Q, "error", err)
		c.JSON(http.StatusOK, fallbackSummary)
		return
	}

	c.JSON(http.StatusOK, summary)
}
