// Package analytics assembles behavioral-analytics events from result clicks
// and records them in the event store.
package analytics

import (
	"fmt"
	"time"

	"github.com/llermaly/search-ui-ubi/internal/device"
	"github.com/llermaly/search-ui-ubi/internal/domain"
)

// Fixed classification tags for click-through events.
const (
	actionClick      = "click"
	messageTypeClick = "CLICK_THROUGH"
)

// Builder assembles AnalyticsEvent records from click events.
type Builder struct {
	application string
	now         func() time.Time
}

// NewBuilder creates a builder tagging events with the given application name.
func NewBuilder(application string) *Builder {
	return &Builder{
		application: application,
		now:         time.Now,
	}
}

// WithClock overrides the build-time clock. Intended for tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build produces exactly one AnalyticsEvent for the given click. The input
// click is not mutated. QueryID mirrors the click's correlation identifier
// and is the empty string when the originating search is unknown. The
// timestamp is assigned here, at build time, in ISO-8601 form.
func (b *Builder) Build(click *domain.ClickEvent, class device.Class, location domain.Geolocation) domain.AnalyticsEvent {
	name := click.ResultFields["name"]
	if name == "" {
		name = click.ResultID
	}

	return domain.AnalyticsEvent{
		Application: b.application,
		ActionName:  actionClick,
		QueryID:     click.RequestID,
		ClientID:    click.ClientID,
		Timestamp:   b.now().UTC().Format(time.RFC3339),
		MessageType: messageTypeClick,
		Message:     fmt.Sprintf("Clicked %s", name),
		UserQuery:   click.Query,
		Attributes: domain.EventAttributes{
			Object: domain.ObjectAttributes{
				ObjectID:    click.ResultID,
				Description: describe(name, click.ResultFields),
				Position: domain.Position{
					Ordinal:   click.ResultIndexOnPage,
					PageDepth: click.Page,
				},
				Device:   string(class),
				Location: location,
			},
		},
	}
}

// describe renders "Name(release_date) by author" from the result fields.
func describe(name string, fields map[string]string) string {
	return fmt.Sprintf("%s(%s) by %s", name, fields["release_date"], fields["author"])
}
