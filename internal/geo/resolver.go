// Package geo resolves a client's approximate location from its network
// address via an external ipapi-style lookup service.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/llermaly/search-ui-ubi/internal/config"
	"github.com/llermaly/search-ui-ubi/internal/domain"
)

// ErrLookup is returned when the external lookup fails or returns
// unusable data.
var ErrLookup = errors.New("geolocation lookup failed")

// HTTP client transport tuning.
const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second
)

// Resolver resolves the caller's approximate geolocation.
type Resolver interface {
	Resolve(ctx context.Context) (domain.Geolocation, error)
}

// HTTPResolver is a Resolver backed by an ipapi-compatible JSON endpoint.
type HTTPResolver struct {
	url    string
	client *http.Client
}

// NewHTTPResolver creates a resolver for the configured lookup endpoint.
func NewHTTPResolver(cfg *config.GeoConfig) *HTTPResolver {
	return &HTTPResolver{
		url: cfg.URL,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        maxIdleConns,
				MaxIdleConnsPerHost: maxIdleConnsPerHost,
				IdleConnTimeout:     idleConnTimeout,
			},
		},
	}
}

// lookupResponse mirrors the ipapi JSON payload.
type lookupResponse struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	CountryName string  `json:"country_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Resolve performs a single external lookup. All failures wrap ErrLookup.
func (r *HTTPResolver) Resolve(ctx context.Context) (domain.Geolocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, http.NoBody)
	if err != nil {
		return domain.Geolocation{}, fmt.Errorf("%w: build request: %v", ErrLookup, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return domain.Geolocation{}, fmt.Errorf("%w: %v", ErrLookup, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		return domain.Geolocation{}, fmt.Errorf("%w: unexpected status %d", ErrLookup, res.StatusCode)
	}

	var decoded lookupResponse
	if decodeErr := json.NewDecoder(res.Body).Decode(&decoded); decodeErr != nil {
		return domain.Geolocation{}, fmt.Errorf("%w: decode response: %v", ErrLookup, decodeErr)
	}

	if net.ParseIP(decoded.IP) == nil {
		return domain.Geolocation{}, fmt.Errorf("%w: malformed ip %q", ErrLookup, decoded.IP)
	}

	return domain.Geolocation{
		IP:        decoded.IP,
		City:      decoded.City,
		Region:    decoded.Region,
		Country:   decoded.CountryName,
		Latitude:  decoded.Latitude,
		Longitude: decoded.Longitude,
	}, nil
}
