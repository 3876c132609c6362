package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/llermaly/search-ui-ubi/internal/domain"
	"github.com/llermaly/search-ui-ubi/internal/logger"
)

// ErrCorrelation is returned when a correlation identifier cannot be
// generated. The affected request must not proceed.
var ErrCorrelation = errors.New("request correlation failed")

// CorrelatedConnector decorates a Connector so that every search request is
// assigned a unique identifier before dispatch, and the same identifier is
// attached unchanged to the corresponding response as "requestId".
//
// A backend failure propagates as-is: no synthetic identifier is attached.
// Autocomplete requests pass through uncorrelated.
type CorrelatedConnector struct {
	next   Connector
	logger logger.Logger
}

// WithCorrelation wraps the given connector with request correlation.
func WithCorrelation(next Connector, log logger.Logger) *CorrelatedConnector {
	return &CorrelatedConnector{
		next:   next,
		logger: log,
	}
}

// Search assigns a request id, dispatches, and stamps the id on the response.
func (c *CorrelatedConnector) Search(ctx context.Context, state *domain.SearchState, queryConfig *domain.QueryConfig) (map[string]any, error) {
	correlated := *state
	if correlated.RequestID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrelation, err)
		}
		correlated.RequestID = id.String()
	}

	result, err := c.next.Search(ctx, &correlated, queryConfig)
	if err != nil {
		return nil, err
	}

	result["requestId"] = correlated.RequestID

	c.logger.Info("Request id assigned",
		logger.String("request_id", correlated.RequestID),
		logger.String("user_query", correlated.SearchTerm),
	)

	return result, nil
}

// Autocomplete passes through to the wrapped connector.
func (c *CorrelatedConnector) Autocomplete(ctx context.Context, state *domain.SearchState, queryConfig *domain.QueryConfig) (map[string]any, error) {
	return c.next.Autocomplete(ctx, state, queryConfig)
}
