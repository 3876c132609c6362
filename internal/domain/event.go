package domain

import "errors"

// ErrMissingResultID is returned when a click event arrives without a result id.
var ErrMissingResultID = errors.New("click event requires a resultId")

// ClickEvent represents a single user click on a rendered search result.
// RequestID is best-effort: it is the empty string when the originating
// search is unknown, never an error.
type ClickEvent struct {
	ResultID          string            `json:"resultId"`
	RequestID         string            `json:"requestId,omitempty"`
	Query             string            `json:"query"`
	ResultIndexOnPage int               `json:"resultIndexOnPage"`
	Page              int               `json:"page"`
	ClientID          string            `json:"clientId,omitempty"`
	ResultFields      map[string]string `json:"resultFields,omitempty"`
}

// Validate checks the click event invariants.
func (c *ClickEvent) Validate() error {
	if c.ResultID == "" {
		return ErrMissingResultID
	}
	return nil
}

// AnalyticsEvent is the durable behavioral-analytics record written to the
// event store. Field names follow the UBI event schema.
type AnalyticsEvent struct {
	Application string          `json:"application"`
	ActionName  string          `json:"action_name"`
	QueryID     string          `json:"query_id"`
	ClientID    string          `json:"client_id"`
	Timestamp   string          `json:"timestamp"`
	MessageType string          `json:"message_type"`
	Message     string          `json:"message"`
	UserQuery   string          `json:"user_query"`
	Attributes  EventAttributes `json:"event_attributes"`
}

// EventAttributes nests the clicked object's attributes.
type EventAttributes struct {
	Object ObjectAttributes `json:"object"`
}

// ObjectAttributes describes the clicked result and its context.
type ObjectAttributes struct {
	ObjectID    string      `json:"object_id"`
	Description string      `json:"description"`
	Position    Position    `json:"position"`
	Device      string      `json:"device"`
	Location    Geolocation `json:"location"`
}

// Position locates a result within the paginated result set.
type Position struct {
	Ordinal   int `json:"ordinal"`
	PageDepth int `json:"page_depth"`
}

// Geolocation is the approximate location resolved from the client's
// network address. The zero value means location is unknown.
type Geolocation struct {
	IP        string  `json:"ip"`
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
