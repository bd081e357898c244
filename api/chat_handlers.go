package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcturus-labs/property-search/internal/interpret"
	"github.com/arcturus-labs/property-search/internal/session"
	"github.com/arcturus-labs/property-search/services"
)

// ChatSearchRequest is one conversational search turn. SessionID is empty on
// the first turn; the response returns the ID to send with followups.
type ChatSearchRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatSearchResponse carries the refined search plus the session state needed
// to continue the conversation.
type ChatSearchResponse struct {
	SessionID        string                   `json:"session_id"`
	Criteria         services.SearchQuery     `json:"criteria"`
	InterpretedQuery *services.Interpretation `json:"interpreted_query,omitempty"`
	services.SearchResult
}

// ChatSearchHandler handles POST /api/chat/search. Each message is
// interpreted and merged onto the criteria accumulated in the session, so a
// followup like "cheaper" or "what about condos" refines the previous search.
func (api *API) ChatSearchHandler(c *gin.Context) {
	var req ChatSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	sessionID := req.SessionID
	var query services.SearchQuery
	if sessionID == "" {
		sessionID = session.NewSessionID()
	} else if saved, ok := api.sessions.Get(sessionID); ok {
		query = saved
	}
	// An expired or unknown session falls through with empty criteria; the
	// conversation restarts rather than erroring.

	query, interpretation := api.interpretAndMerge(c.Request.Context(), query, req.Message)

	// The raw message seeds the text search for this turn only; the session
	// keeps just the merged structured criteria.
	searchResult, err := api.searcher.Search(interpret.ApplyTextFallback(query, req.Message))
	if err != nil {
		SendSearchError(c, err)
		return
	}

	api.sessions.Put(sessionID, query)

	api.logger.Info("chat search completed",
		"session_id", sessionID,
		"message", req.Message,
		"total", searchResult.Total,
	)

	c.JSON(http.StatusOK, ChatSearchResponse{
		SessionID:        sessionID,
		Criteria:         query,
		InterpretedQuery: interpretation,
		SearchResult:     searchResult,
	})
}
