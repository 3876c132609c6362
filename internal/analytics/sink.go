package analytics

import (
	"context"

	"github.com/llermaly/search-ui-ubi/internal/domain"
	"github.com/llermaly/search-ui-ubi/internal/elasticsearch"
)

// Sink durably records analytics events. A Record call is one-shot: events
// are never retried or deduplicated by the producer, so two identical clicks
// produce two stored records.
type Sink interface {
	Record(ctx context.Context, event domain.AnalyticsEvent) error
	// RecordRaw stores an event-shaped document as-is, without schema
	// validation. Used by the analytics passthrough endpoint.
	RecordRaw(ctx context.Context, doc map[string]any) error
}

// ElasticSink stores analytics events as documents in an Elasticsearch index.
type ElasticSink struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticSink creates a sink writing to the given index.
func NewElasticSink(esClient *elasticsearch.Client, index string) *ElasticSink {
	return &ElasticSink{
		esClient: esClient,
		index:    index,
	}
}

// Record indexes one analytics event.
func (s *ElasticSink) Record(ctx context.Context, event domain.AnalyticsEvent) error {
	return s.esClient.Index(ctx, s.index, event)
}

// RecordRaw indexes an arbitrary event document.
func (s *ElasticSink) RecordRaw(ctx context.Context, doc map[string]any) error {
	return s.esClient.Index(ctx, s.index, doc)
}
