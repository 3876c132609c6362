package search

import (
	"reflect"
	"testing"

	"github.com/llermaly/search-ui-ubi/internal/domain"
)

func bookQueryConfig() *domain.QueryConfig {
	return &domain.QueryConfig{
		SearchFields: map[string]any{
			"name":   map[string]any{},
			"author": map[string]any{},
		},
	}
}

func TestBuildSearchQuery_WithTerm(t *testing.T) {
	state := &domain.SearchState{
		SearchTerm: "dune",
		RequestID:  "a1b2c3d4-0000-0000-0000-000000000000",
	}

	body := BuildSearchQuery(state, bookQueryConfig())

	query, ok := body["query"].(map[string]any)
	if !ok {
		t.Fatal("expected a query clause")
	}
	multiMatch, ok := query["multi_match"].(map[string]any)
	if !ok {
		t.Fatal("expected a multi_match query")
	}
	if multiMatch["query"] != "dune" {
		t.Errorf("multi_match query = %v, want dune", multiMatch["query"])
	}

	fields, ok := multiMatch["fields"].([]string)
	if !ok {
		t.Fatalf("multi_match fields has type %T, want []string", multiMatch["fields"])
	}
	if !reflect.DeepEqual(fields, []string{"author", "name"}) {
		t.Errorf("multi_match fields = %v, want [author name]", fields)
	}
}

func TestBuildSearchQuery_UBIExtension(t *testing.T) {
	state := &domain.SearchState{
		SearchTerm: "dune",
		RequestID:  "req-123",
	}

	body := BuildSearchQuery(state, bookQueryConfig())

	ext, ok := body["ext"].(map[string]any)
	if !ok {
		t.Fatal("expected an ext block")
	}
	ubi, ok := ext["ubi"].(map[string]any)
	if !ok {
		t.Fatal("expected a ubi extension")
	}
	if ubi["query_id"] != "req-123" {
		t.Errorf("ubi query_id = %v, want req-123", ubi["query_id"])
	}
	if ubi["user_query"] != "dune" {
		t.Errorf("ubi user_query = %v, want dune", ubi["user_query"])
	}
}

func TestBuildSearchQuery_EmptyTerm(t *testing.T) {
	state := &domain.SearchState{}

	body := BuildSearchQuery(state, bookQueryConfig())

	// No query clause: the backend's default match_all applies.
	if _, ok := body["query"]; ok {
		t.Error("expected no query clause for an empty search term")
	}

	ext := body["ext"].(map[string]any)
	ubi := ext["ubi"].(map[string]any)
	if ubi["user_query"] != "" {
		t.Errorf("ubi user_query = %v, want empty string", ubi["user_query"])
	}
}

func TestBuildSearchQuery_Paging(t *testing.T) {
	state := &domain.SearchState{
		SearchTerm:     "dune",
		Current:        3,
		ResultsPerPage: 10,
	}

	body := BuildSearchQuery(state, bookQueryConfig())

	if body["size"] != 10 {
		t.Errorf("size = %v, want 10", body["size"])
	}
	if body["from"] != 20 {
		t.Errorf("from = %v, want 20", body["from"])
	}
}

func TestBuildAutocompleteQuery(t *testing.T) {
	state := &domain.SearchState{SearchTerm: "du"}

	body := BuildAutocompleteQuery(state, bookQueryConfig())

	query := body["query"].(map[string]any)
	multiMatch := query["multi_match"].(map[string]any)
	if multiMatch["type"] != "phrase_prefix" {
		t.Errorf("multi_match type = %v, want phrase_prefix", multiMatch["type"])
	}
}

func TestBuildAutocompleteQuery_ShortTerm(t *testing.T) {
	state := &domain.SearchState{SearchTerm: "d"}

	body := BuildAutocompleteQuery(state, bookQueryConfig())

	if body["size"] != 0 {
		t.Errorf("size = %v, want 0 for short terms", body["size"])
	}
	if _, ok := body["query"]; ok {
		t.Error("expected no query clause for short terms")
	}
}
