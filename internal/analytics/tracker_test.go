package analytics_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/llermaly/search-ui-ubi/internal/analytics"
	"github.com/llermaly/search-ui-ubi/internal/domain"
	"github.com/llermaly/search-ui-ubi/internal/geo"
	"github.com/llermaly/search-ui-ubi/internal/logger"
)

const recordWait = 2 * time.Second

// fakeResolver returns a fixed location or error.
type fakeResolver struct {
	location domain.Geolocation
	err      error
}

func (f *fakeResolver) Resolve(context.Context) (domain.Geolocation, error) {
	return f.location, f.err
}

// fakeSink signals recorded events on a channel.
type fakeSink struct {
	recorded chan domain.AnalyticsEvent
	err      error
}

func newFakeSink() *fakeSink {
	return &fakeSink{recorded: make(chan domain.AnalyticsEvent, 16)}
}

func (f *fakeSink) Record(_ context.Context, event domain.AnalyticsEvent) error {
	if f.err != nil {
		return f.err
	}
	f.recorded <- event
	return nil
}

func (f *fakeSink) RecordRaw(context.Context, map[string]any) error {
	return f.err
}

func newTracker(resolver geo.Resolver, sink analytics.Sink) *analytics.Tracker {
	return analytics.NewTracker(
		analytics.NewBuilder("search-ui"),
		resolver,
		sink,
		logger.NewNop(),
	)
}

func click(id string) *domain.ClickEvent {
	return &domain.ClickEvent{
		ResultID:  "42",
		RequestID: id,
		Query:     "dune",
		ResultFields: map[string]string{
			"name": "Dune",
		},
	}
}

func waitForEvent(t *testing.T, sink *fakeSink) domain.AnalyticsEvent {
	t.Helper()

	select {
	case event := <-sink.recorded:
		return event
	case <-time.After(recordWait):
		t.Fatal("timed out waiting for analytics event")
		return domain.AnalyticsEvent{}
	}
}

func TestTrack_RecordsEvent(t *testing.T) {
	sink := newFakeSink()
	resolver := &fakeResolver{location: domain.Geolocation{IP: "203.0.113.7", City: "Lima"}}
	tracker := newTracker(resolver, sink)

	err := tracker.Track(context.Background(), click("req-1"), "iPhone")
	if err != nil {
		t.Fatalf("Track() unexpected error: %v", err)
	}

	event := waitForEvent(t, sink)
	if event.QueryID != "req-1" {
		t.Errorf("query_id = %q, want req-1", event.QueryID)
	}
	if event.Attributes.Object.Device != "mobile" {
		t.Errorf("device = %q, want mobile", event.Attributes.Object.Device)
	}
	if event.Attributes.Object.Location.City != "Lima" {
		t.Errorf("city = %q, want Lima", event.Attributes.Object.Location.City)
	}
}

func TestTrack_GeoFailureDropsEvent(t *testing.T) {
	sink := newFakeSink()
	resolver := &fakeResolver{err: fmt.Errorf("%w: connection refused", geo.ErrLookup)}
	tracker := newTracker(resolver, sink)

	// Lookup failure is swallowed: no error, no stored event.
	err := tracker.Track(context.Background(), click("req-1"), "iPhone")
	if err != nil {
		t.Fatalf("Track() unexpected error: %v", err)
	}

	select {
	case event := <-sink.recorded:
		t.Fatalf("expected no event after geo failure, got %+v", event)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTrack_InvalidClickRejected(t *testing.T) {
	sink := newFakeSink()
	tracker := newTracker(&fakeResolver{}, sink)

	err := tracker.Track(context.Background(), &domain.ClickEvent{}, "iPhone")
	if !errors.Is(err, domain.ErrMissingResultID) {
		t.Fatalf("expected ErrMissingResultID, got %v", err)
	}
}

func TestTrack_SinkFailureNotPropagated(t *testing.T) {
	sink := newFakeSink()
	sink.err = errors.New("index returned error [503]")
	tracker := newTracker(&fakeResolver{}, sink)

	if err := tracker.Track(context.Background(), click("req-1"), "iPhone"); err != nil {
		t.Fatalf("Track() must not surface sink errors, got %v", err)
	}
}

func TestTrack_DuplicateClicksRecordTwice(t *testing.T) {
	sink := newFakeSink()
	tracker := newTracker(&fakeResolver{}, sink)

	for i := 0; i < 2; i++ {
		if err := tracker.Track(context.Background(), click("req-dup"), "iPhone"); err != nil {
			t.Fatalf("Track() unexpected error: %v", err)
		}
	}

	first := waitForEvent(t, sink)
	second := waitForEvent(t, sink)
	if first.QueryID != "req-dup" || second.QueryID != "req-dup" {
		t.Errorf("expected two records for req-dup, got %q and %q", first.QueryID, second.QueryID)
	}
}
