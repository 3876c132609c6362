// Package domain defines the request, click, and analytics event types
// exchanged between the search UI and the proxy.
package domain

import "sort"

// SearchState represents one user search invocation as sent by the UI.
// RequestID is assigned server-side by the request correlator and is
// immutable once set; the UI retains it for later click correlation.
type SearchState struct {
	SearchTerm     string `json:"searchTerm"`
	RequestID      string `json:"requestId,omitempty"`
	Current        int    `json:"current,omitempty"`
	ResultsPerPage int    `json:"resultsPerPage,omitempty"`
}

// QueryConfig carries the UI's query configuration. The keys of
// SearchFields are the fields a full-text query matches against.
type QueryConfig struct {
	SearchFields map[string]any `json:"search_fields"`
	ResultFields map[string]any `json:"result_fields,omitempty"`
}

// SearchFieldNames returns the search field names in a deterministic order.
func (qc *QueryConfig) SearchFieldNames() []string {
	if len(qc.SearchFields) == 0 {
		return nil
	}
	names := make([]string, 0, len(qc.SearchFields))
	for name := range qc.SearchFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
