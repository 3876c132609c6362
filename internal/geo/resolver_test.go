package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/llermaly/search-ui-ubi/internal/config"
)

func testResolver(url string) *HTTPResolver {
	return NewHTTPResolver(&config.GeoConfig{
		URL:     url,
		Timeout: 2 * time.Second,
	})
}

func TestResolve_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ip": "203.0.113.7",
			"city": "Lima",
			"region": "Lima Province",
			"country_name": "Peru",
			"latitude": -12.0464,
			"longitude": -77.0428
		}`))
	}))
	defer srv.Close()

	loc, err := testResolver(srv.URL).Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}

	if loc.IP != "203.0.113.7" {
		t.Errorf("ip = %q, want 203.0.113.7", loc.IP)
	}
	if loc.City != "Lima" {
		t.Errorf("city = %q, want Lima", loc.City)
	}
	if loc.Country != "Peru" {
		t.Errorf("country = %q, want Peru", loc.Country)
	}
	if loc.Latitude != -12.0464 || loc.Longitude != -77.0428 {
		t.Errorf("lat/lon = %v/%v, want -12.0464/-77.0428", loc.Latitude, loc.Longitude)
	}
}

func TestResolve_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testResolver(srv.URL).Resolve(context.Background())
	if !errors.Is(err, ErrLookup) {
		t.Fatalf("expected ErrLookup, got %v", err)
	}
}

func TestResolve_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := testResolver(srv.URL).Resolve(context.Background())
	if !errors.Is(err, ErrLookup) {
		t.Fatalf("expected ErrLookup, got %v", err)
	}
}

func TestResolve_MissingIP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"city": "Lima"}`))
	}))
	defer srv.Close()

	_, err := testResolver(srv.URL).Resolve(context.Background())
	if !errors.Is(err, ErrLookup) {
		t.Fatalf("expected ErrLookup for missing ip, got %v", err)
	}
}

func TestResolve_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // Resolve against a dead server.

	_, err := testResolver(srv.URL).Resolve(context.Background())
	if !errors.Is(err, ErrLookup) {
		t.Fatalf("expected ErrLookup for network error, got %v", err)
	}
}
