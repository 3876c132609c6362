// Package elasticsearch wraps the go-elasticsearch client with the small
// surface this service needs: search, document indexing, and cluster health.
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/llermaly/search-ui-ubi/internal/config"
)

// pingTimeout bounds the connection check performed at construction.
const pingTimeout = 5 * time.Second

// Client wraps the Elasticsearch client.
type Client struct {
	esClient *es.Client
	config   *config.ElasticsearchConfig
}

// NewClient creates a new Elasticsearch client and verifies the connection.
func NewClient(cfg *config.ElasticsearchConfig) (*Client, error) {
	clientConfig := es.Config{
		Addresses:  []string{normalizeHost(cfg.Host)},
		MaxRetries: cfg.MaxRetries,
	}

	if cfg.APIKey != "" {
		clientConfig.APIKey = cfg.APIKey
	}

	esClient, err := es.NewClient(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	client := &Client{
		esClient: esClient,
		config:   cfg,
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping elasticsearch: %w", err)
	}

	return client, nil
}

// normalizeHost ensures the host URL carries a scheme.
func normalizeHost(host string) string {
	if host == "" {
		return "http://localhost:9200"
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		return "http://" + host
	}
	return host
}

// Ping verifies the Elasticsearch connection.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.esClient.Ping(c.esClient.Ping.WithContext(ctx))
	if err != nil {
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("elasticsearch ping failed: %s", string(body))
	}

	return nil
}

// Search executes a search query against the given index and returns the
// decoded response body.
func (c *Client) Search(ctx context.Context, index string, query map[string]any) (map[string]any, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("marshal search query: %w", err)
	}

	res, err := c.esClient.Search(
		c.esClient.Search.WithContext(ctx),
		c.esClient.Search.WithIndex(index),
		c.esClient.Search.WithBody(bytes.NewReader(body)),
		c.esClient.Search.WithTimeout(c.config.Timeout),
		c.esClient.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.IsError() {
		errBody, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search returned error [%d]: %s", res.StatusCode, string(errBody))
	}

	var decoded map[string]any
	if decodeErr := json.NewDecoder(res.Body).Decode(&decoded); decodeErr != nil {
		return nil, fmt.Errorf("decode search response: %w", decodeErr)
	}

	return decoded, nil
}

// Index stores a single document in the given index.
func (c *Client) Index(ctx context.Context, index string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	res, err := c.esClient.Index(
		index,
		bytes.NewReader(body),
		c.esClient.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index request failed: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.IsError() {
		errBody, _ := io.ReadAll(res.Body)
		return fmt.Errorf("index returned error [%d]: %s", res.StatusCode, string(errBody))
	}

	return nil
}

// ClusterHealth returns the decoded cluster health response.
func (c *Client) ClusterHealth(ctx context.Context) (map[string]any, error) {
	res, err := c.esClient.Cluster.Health(
		c.esClient.Cluster.Health.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("cluster health returned error [%d]: %s", res.StatusCode, string(body))
	}

	var decoded map[string]any
	if decodeErr := json.NewDecoder(res.Body).Decode(&decoded); decodeErr != nil {
		return nil, fmt.Errorf("decode cluster health: %w", decodeErr)
	}

	return decoded, nil
}
