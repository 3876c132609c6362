// Package search translates UI search state into Elasticsearch queries and
// correlates each request with a unique identifier.
package search

import (
	"context"

	"github.com/llermaly/search-ui-ubi/internal/config"
	"github.com/llermaly/search-ui-ubi/internal/domain"
	"github.com/llermaly/search-ui-ubi/internal/elasticsearch"
	"github.com/llermaly/search-ui-ubi/internal/logger"
)

// Connector executes search and autocomplete requests against the backend.
// The raw backend response is passed through to the caller.
type Connector interface {
	Search(ctx context.Context, state *domain.SearchState, queryConfig *domain.QueryConfig) (map[string]any, error)
	Autocomplete(ctx context.Context, state *domain.SearchState, queryConfig *domain.QueryConfig) (map[string]any, error)
}

// ElasticConnector is the Elasticsearch-backed Connector implementation.
type ElasticConnector struct {
	esClient *elasticsearch.Client
	index    string
	logger   logger.Logger
}

// NewElasticConnector creates a connector bound to the configured index.
func NewElasticConnector(esClient *elasticsearch.Client, cfg *config.ElasticsearchConfig, log logger.Logger) *ElasticConnector {
	return &ElasticConnector{
		esClient: esClient,
		index:    cfg.Index,
		logger:   log,
	}
}

// Search executes a full-text search for the given state.
func (c *ElasticConnector) Search(ctx context.Context, state *domain.SearchState, queryConfig *domain.QueryConfig) (map[string]any, error) {
	query := BuildSearchQuery(state, queryConfig)

	c.logger.Debug("Executing search",
		logger.String("index", c.index),
		logger.String("user_query", state.SearchTerm),
		logger.String("request_id", state.RequestID),
	)

	return c.esClient.Search(ctx, c.index, query)
}

// Autocomplete executes a prefix query over the configured search fields.
func (c *ElasticConnector) Autocomplete(ctx context.Context, state *domain.SearchState, queryConfig *domain.QueryConfig) (map[string]any, error) {
	query := BuildAutocompleteQuery(state, queryConfig)

	c.logger.Debug("Executing autocomplete",
		logger.String("index", c.index),
		logger.String("user_query", state.SearchTerm),
	)

	return c.esClient.Search(ctx, c.index, query)
}
