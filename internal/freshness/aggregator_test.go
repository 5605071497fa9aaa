package freshness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TheKazutoPe/MONITOREO-GPS/internal/models"
)

type fakeEventSource struct {
	rows  []models.LocationEvent
	err   error
	since time.Time
}

func (f *fakeEventSource) RecentSince(_ context.Context, since time.Time) ([]models.LocationEvent, error) {
	f.since = since
	return f.rows, f.err
}

var now = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return now }

func event(deviceID string, age time.Duration, lat, lon float64) models.LocationEvent {
	return models.LocationEvent{
		DeviceID:   deviceID,
		Latitude:   lat,
		Longitude:  lon,
		RecordedAt: now.Add(-age),
	}
}

func TestSnapshotOneEntryPerDevice(t *testing.T) {
	// Rows arrive newest first, as the repository guarantees.
	src := &fakeEventSource{rows: []models.LocationEvent{
		event("123", 1*time.Minute, 20, 20),
		event("456", 90*time.Second, -12.1, -77.0),
		event("123", 2*time.Minute, 10, 10),
	}}

	agg := NewAggregatorWith(src, Window, ActiveCutoff, fixedNow)

	views, err := agg.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(views))
	}

	byDevice := make(map[string]models.FreshnessView)
	for _, v := range views {
		byDevice[v.DeviceID] = v
	}

	got, ok := byDevice["123"]
	if !ok {
		t.Fatal("missing entry for device 123")
	}
	if got.Latitude != 20 || got.Longitude != 20 {
		t.Errorf("device 123: expected newest coordinates (20,20), got (%v,%v)", got.Latitude, got.Longitude)
	}
	if got.MinutesElapsed != 1 {
		t.Errorf("device 123: expected 1 minute elapsed, got %d", got.MinutesElapsed)
	}
	if got.Status != StatusActive {
		t.Errorf("device 123: expected %q, got %q", StatusActive, got.Status)
	}
}

func TestSnapshotWindowCutoff(t *testing.T) {
	src := &fakeEventSource{}
	agg := NewAggregatorWith(src, Window, ActiveCutoff, fixedNow)

	if _, err := agg.Snapshot(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := now.Add(-10 * time.Minute)
	if !src.since.Equal(want) {
		t.Errorf("expected query cutoff %v, got %v", want, src.since)
	}
}

func TestSnapshotEmptyWindow(t *testing.T) {
	agg := NewAggregatorWith(&fakeEventSource{}, Window, ActiveCutoff, fixedNow)

	views, err := agg.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("expected no entries, got %d", len(views))
	}
	if views == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestSnapshotQueryFailureIsFatal(t *testing.T) {
	src := &fakeEventSource{err: errors.New("connection refused")}
	agg := NewAggregatorWith(src, Window, ActiveCutoff, fixedNow)

	views, err := agg.Snapshot(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if views != nil {
		t.Errorf("expected no partial results, got %d entries", len(views))
	}
}

func TestMinutesElapsedRounding(t *testing.T) {
	// Half rounds away from zero.
	cases := []struct {
		age  time.Duration
		want int
	}{
		{0, 0},
		{20 * time.Second, 0},
		{30 * time.Second, 1},
		{45 * time.Second, 1},
		{89 * time.Second, 1},
		{90 * time.Second, 2},
		{9 * time.Minute, 9},
	}

	for _, tc := range cases {
		src := &fakeEventSource{rows: []models.LocationEvent{event("1", tc.age, 0, 0)}}
		agg := NewAggregatorWith(src, Window, ActiveCutoff, fixedNow)

		views, err := agg.Snapshot(context.Background())
		if err != nil {
			t.Fatalf("age %v: unexpected error: %v", tc.age, err)
		}
		if views[0].MinutesElapsed != tc.want {
			t.Errorf("age %v: expected %d minutes, got %d", tc.age, tc.want, views[0].MinutesElapsed)
		}
	}
}

// The active cutoff (30 min) exceeds the query window (10 min), so any
// row that survives the window filter classifies as active. This pins
// the shipped behavior; widening the window is the only way to observe
// an inactive row.
func TestStatusAlwaysActiveWithDefaultThresholds(t *testing.T) {
	src := &fakeEventSource{rows: []models.LocationEvent{
		event("1", 0, 0, 0),
		event("2", 5*time.Minute, 0, 0),
		event("3", 9*time.Minute+59*time.Second, 0, 0),
	}}
	agg := NewAggregatorWith(src, Window, ActiveCutoff, fixedNow)

	views, err := agg.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, v := range views {
		if v.Status != StatusActive {
			t.Errorf("device %s: expected %q within default window, got %q", v.DeviceID, StatusActive, v.Status)
		}
	}
}

func TestStatusInactiveBeyondCutoffWithWidenedWindow(t *testing.T) {
	src := &fakeEventSource{rows: []models.LocationEvent{
		event("old", 45*time.Minute, 0, 0),
		event("edge", 30*time.Minute, 0, 0),
	}}
	agg := NewAggregatorWith(src, 2*time.Hour, ActiveCutoff, fixedNow)

	views, err := agg.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byDevice := make(map[string]string)
	for _, v := range views {
		byDevice[v.DeviceID] = v.Status
	}

	if byDevice["old"] != StatusInactive {
		t.Errorf("45 min old row: expected %q, got %q", StatusInactive, byDevice["old"])
	}
	if byDevice["edge"] != StatusActive {
		t.Errorf("exactly 30 min old row: expected %q, got %q", StatusActive, byDevice["edge"])
	}
}
