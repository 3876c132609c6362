// Package api exposes the HTTP surface of the search proxy.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llermaly/search-ui-ubi/internal/analytics"
	"github.com/llermaly/search-ui-ubi/internal/domain"
	"github.com/llermaly/search-ui-ubi/internal/logger"
	"github.com/llermaly/search-ui-ubi/internal/search"
)

// ClusterHealthChecker reports backend cluster health.
type ClusterHealthChecker interface {
	ClusterHealth(ctx context.Context) (map[string]any, error)
}

// Handler holds HTTP request handlers.
type Handler struct {
	connector search.Connector
	tracker   *analytics.Tracker
	sink      analytics.Sink
	health    ClusterHealthChecker
	logger    logger.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(
	connector search.Connector,
	tracker *analytics.Tracker,
	sink analytics.Sink,
	health ClusterHealthChecker,
	log logger.Logger,
) *Handler {
	return &Handler{
		connector: connector,
		tracker:   tracker,
		sink:      sink,
		health:    health,
		logger:    log,
	}
}

// searchRequest is the {state, queryConfig} body shared by search and
// autocomplete.
type searchRequest struct {
	State       domain.SearchState `json:"state"`
	QueryConfig domain.QueryConfig `json:"queryConfig"`
}

// Search forwards a correlated search request to the backend.
func (h *Handler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	result, err := h.connector.Search(c.Request.Context(), &req.State, &req.QueryConfig)
	if err != nil {
		h.serverError(c, "Search failed", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Autocomplete forwards an autocomplete request to the backend.
func (h *Handler) Autocomplete(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	result, err := h.connector.Autocomplete(c.Request.Context(), &req.State, &req.QueryConfig)
	if err != nil {
		h.serverError(c, "Autocomplete failed", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Analytics stores one event-shaped document as-is. The store does not
// validate the event schema; delivery failures surface as a request failure
// to the caller, who by contract only logs them.
func (h *Handler) Analytics(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		h.badRequest(c, err)
		return
	}

	queryID, _ := doc["query_id"].(string)
	h.logger.Info("Storing analytics event",
		logger.String("query_id", queryID),
	)

	if err := h.sink.RecordRaw(c.Request.Context(), doc); err != nil {
		h.serverError(c, "Failed to store analytics event", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Analytics event saved successfully"})
}

// Click runs the click analytics pipeline for a result click. The response
// does not depend on analytics delivery; only invalid input is rejected.
func (h *Handler) Click(c *gin.Context) {
	var click domain.ClickEvent
	if err := c.ShouldBindJSON(&click); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := h.tracker.Track(c.Request.Context(), &click, c.Request.UserAgent()); err != nil {
		h.badRequest(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "Click accepted"})
}

// Health returns backend cluster health.
func (h *Handler) Health(c *gin.Context) {
	health, err := h.health.ClusterHealth(c.Request.Context())
	if err != nil {
		h.logger.Error("Cluster health check failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to get Elasticsearch cluster info",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"elasticsearch": health,
	})
}

// NotFound handles unmatched routes.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

func (h *Handler) serverError(c *gin.Context, logMsg string, err error) {
	h.logger.Error(logMsg,
		logger.Error(err),
		logger.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Something went wrong!",
		"error":   err.Error(),
	})
}
