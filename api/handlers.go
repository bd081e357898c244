package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/arcturus-labs/property-search/internal/errors"
	"github.com/arcturus-labs/property-search/internal/interpret"
	"github.com/arcturus-labs/property-search/internal/session"
	"github.com/arcturus-labs/property-search/services"
	"github.com/arcturus-labs/property-search/store"
)

// API holds dependencies for API handlers: the search engine, the catalog for
// direct lookups, the optional query interpreter, and the chat session store.
type API struct {
	searcher    services.Searcher
	catalog     *store.Catalog
	interpreter services.Interpreter
	summarizer  services.Summarizer
	sessions    session.Store
	logger      *slog.Logger

	interpretTimeout time.Duration
	maxPerPage       int
}

// Options configures an API beyond its required collaborators.
type Options struct {
	Interpreter      services.Interpreter // nil disables interpretation
	Summarizer       services.Summarizer  // nil disables AI summaries
	Sessions         session.Store        // nil uses an in-memory default
	Logger           *slog.Logger
	InterpretTimeout time.Duration
	MaxPerPage       int
}

// NewAPI creates a new API handler structure.
func NewAPI(searcher services.Searcher, catalog *store.Catalog, opts Options) *API {
	if opts.Interpreter == nil {
		opts.Interpreter = interpret.Disabled{}
	}
	if opts.Summarizer == nil {
		opts.Summarizer = interpret.Disabled{}
	}
	if opts.Sessions == nil {
		opts.Sessions = session.NewLRUStore(1024, 30*time.Minute)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.InterpretTimeout <= 0 {
		opts.InterpretTimeout = 10 * time.Second
	}
	if opts.MaxPerPage <= 0 {
		opts.MaxPerPage = 100
	}

	return &API{
		searcher:         searcher,
		catalog:          catalog,
		interpreter:      opts.Interpreter,
		summarizer:       opts.Summarizer,
		sessions:         opts.Sessions,
		logger:           opts.Logger,
		interpretTimeout: opts.InterpretTimeout,
		maxPerPage:       opts.MaxPerPage,
	}
}

// SetupRoutes defines all the API routes for the property search service.
func SetupRoutes(router *gin.Engine, apiHandler *API) {
	router.GET("/health", apiHandler.HealthCheckHandler)

	apiRoutes := router.Group("/api")
	{
		apiRoutes.GET("/search", apiHandler.SearchHandler)
		apiRoutes.GET("/facets", apiHandler.FacetsHandler)
		apiRoutes.GET("/interpret", apiHandler.InterpretHandler)
		apiRoutes.GET("/properties/:propertyID", apiHandler.GetPropertyHandler)
		apiRoutes.POST("/summary", apiHandler.SummaryHandler)
		apiRoutes.POST("/chat/search", apiHandler.ChatSearchHandler)
	}
}

// HealthCheckHandler provides a simple health check endpoint.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"properties": api.catalog.Len(),
	})
}

// GetPropertyHandler returns a single property by ID.
func (api *API) GetPropertyHandler(c *gin.Context) {
	propertyID := c.Param("propertyID")

	if result := ValidatePropertyID(propertyID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	record, err := api.catalog.Get(propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			SendPropertyNotFoundError(c, propertyID)
			return
		}
		SendInternalError(c, "get property", err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// FacetsHandler returns unconstrained facet counts over the whole catalog,
// used to populate filter controls before the first search.
func (api *API) FacetsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"facets": api.searcher.CatalogFacets(),
		"total":  api.catalog.Len(),
	})
}
