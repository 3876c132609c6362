package analytics

import (
	"context"

	"github.com/llermaly/search-ui-ubi/internal/device"
	"github.com/llermaly/search-ui-ubi/internal/domain"
	"github.com/llermaly/search-ui-ubi/internal/geo"
	"github.com/llermaly/search-ui-ubi/internal/logger"
)

// Tracker runs the click analytics pipeline: classify the device, resolve
// geolocation, build the event, and hand it to the sink.
//
// Delivery is fire-and-forget: the sink call runs in a detached goroutine
// that is never joined, and its errors are logged, never propagated. The
// user-facing click action completes regardless of delivery outcome.
type Tracker struct {
	builder  *Builder
	resolver geo.Resolver
	sink     Sink
	logger   logger.Logger
}

// NewTracker creates a click tracker.
func NewTracker(builder *Builder, resolver geo.Resolver, sink Sink, log logger.Logger) *Tracker {
	return &Tracker{
		builder:  builder,
		resolver: resolver,
		sink:     sink,
		logger:   log,
	}
}

// Track processes one click. Geolocation resolution blocks the pipeline; if
// the lookup fails the event is dropped and the failure logged, matching the
// upstream policy of letting enrichment failure suppress the event.
//
// The returned error is non-nil only for invalid input; delivery failures
// never surface to the caller.
func (t *Tracker) Track(ctx context.Context, click *domain.ClickEvent, userAgent string) error {
	if err := click.Validate(); err != nil {
		return err
	}

	class := device.Classify(userAgent)

	location, err := t.resolver.Resolve(ctx)
	if err != nil {
		t.logger.Warn("Geolocation lookup failed, dropping analytics event",
			logger.String("query_id", click.RequestID),
			logger.String("result_id", click.ResultID),
			logger.Error(err),
		)
		return nil
	}

	event := t.builder.Build(click, class, location)

	t.dispatch(ctx, event)
	return nil
}

// dispatch sends the event to the sink without awaiting the outcome.
// Cancellation of the triggering request does not abort the send.
func (t *Tracker) dispatch(ctx context.Context, event domain.AnalyticsEvent) {
	sendCtx := context.WithoutCancel(ctx)

	go func() {
		if err := t.sink.Record(sendCtx, event); err != nil {
			t.logger.Error("Failed to record analytics event",
				logger.String("query_id", event.QueryID),
				logger.Error(err),
			)
			return
		}
		t.logger.Info("Analytics event recorded",
			logger.String("query_id", event.QueryID),
			logger.String("object_id", event.Attributes.Object.ObjectID),
		)
	}()
}
