package search

import (
	"github.com/llermaly/search-ui-ubi/internal/domain"
)

// Default paging values matching the UI connector's behavior.
const (
	defaultPageSize      = 20
	autocompleteMaxHits  = 10
	autocompleteMinChars = 2
)

// BuildSearchQuery constructs the Elasticsearch request body for a search.
// Every request carries a ubi extension block tying the backend query to the
// correlation identifier; a multi_match clause is added only when the user
// typed a search term, otherwise the backend's default match_all applies.
func BuildSearchQuery(state *domain.SearchState, queryConfig *domain.QueryConfig) map[string]any {
	body := map[string]any{
		"ext": map[string]any{
			"ubi": map[string]any{
				"query_id":   state.RequestID,
				"user_query": state.SearchTerm,
			},
		},
	}

	applyPaging(body, state)

	if state.SearchTerm == "" {
		return body
	}

	body["query"] = map[string]any{
		"multi_match": map[string]any{
			"query":  state.SearchTerm,
			"fields": queryConfig.SearchFieldNames(),
		},
	}

	return body
}

// BuildAutocompleteQuery constructs a phrase-prefix query over the search
// fields. Terms shorter than the minimum return an empty result set cheaply.
func BuildAutocompleteQuery(state *domain.SearchState, queryConfig *domain.QueryConfig) map[string]any {
	if len(state.SearchTerm) < autocompleteMinChars {
		return map[string]any{"size": 0}
	}

	return map[string]any{
		"size": autocompleteMaxHits,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  state.SearchTerm,
				"type":   "phrase_prefix",
				"fields": queryConfig.SearchFieldNames(),
			},
		},
	}
}

// applyPaging maps the UI's current page and page size onto from/size.
func applyPaging(body map[string]any, state *domain.SearchState) {
	size := state.ResultsPerPage
	if size <= 0 {
		size = defaultPageSize
	}
	body["size"] = size

	if state.Current > 1 {
		body["from"] = (state.Current - 1) * size
	}
}
