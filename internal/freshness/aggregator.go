// Package freshness computes the latest known position per device
// within a trailing window.
package freshness

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/TheKazutoPe/MONITOREO-GPS/internal/models"
)

const (
	// Window bounds the range query: rows older than this are never
	// fetched.
	Window = 10 * time.Minute
	// ActiveCutoff classifies a representative row as active when its
	// age does not exceed it. It deliberately exceeds Window, so every
	// row that survives the window filter classifies as active; the
	// inactive branch only fires with a widened window. Kept as-is
	// pending product confirmation.
	ActiveCutoff = 30 * time.Minute

	StatusActive   = "activo"
	StatusInactive = "inactivo"
)

// EventSource is the read side of the event table the aggregator needs.
// Rows must come back newest first.
type EventSource interface {
	RecentSince(ctx context.Context, since time.Time) ([]models.LocationEvent, error)
}

type Aggregator struct {
	events       EventSource
	window       time.Duration
	activeCutoff time.Duration
	now          func() time.Time
}

func NewAggregator(events EventSource) *Aggregator {
	return &Aggregator{
		events:       events,
		window:       Window,
		activeCutoff: ActiveCutoff,
		now:          time.Now,
	}
}

// NewAggregatorWith overrides the window, cutoff, and clock for tests.
func NewAggregatorWith(events EventSource, window, activeCutoff time.Duration, now func() time.Time) *Aggregator {
	return &Aggregator{
		events:       events,
		window:       window,
		activeCutoff: activeCutoff,
		now:          now,
	}
}

// Snapshot returns one annotated entry per device seen within the
// trailing window. A query failure is fatal: no partial results.
//
// Concurrent writes for the same device have no ordering contract
// beyond the store-assigned timestamp; whichever row committed with the
// later timestamp wins the reduction.
func (a *Aggregator) Snapshot(ctx context.Context) ([]models.FreshnessView, error) {
	now := a.now().UTC()

	rows, err := a.events.RecentSince(ctx, now.Add(-a.window))
	if err != nil {
		return nil, fmt.Errorf("freshness query: %w", err)
	}

	return a.reduce(rows, now), nil
}

// reduce collapses descending-ordered rows to the first occurrence per
// device and annotates each with its age and activity status.
func (a *Aggregator) reduce(rows []models.LocationEvent, now time.Time) []models.FreshnessView {
	seen := make(map[string]struct{}, len(rows))
	views := make([]models.FreshnessView, 0, len(rows))

	for _, row := range rows {
		if _, ok := seen[row.DeviceID]; ok {
			continue
		}
		seen[row.DeviceID] = struct{}{}

		// Round half away from zero: 90s is 2 minutes.
		minutes := int(math.Round(now.Sub(row.RecordedAt).Seconds() / 60))

		status := StatusActive
		if time.Duration(minutes)*time.Minute > a.activeCutoff {
			status = StatusInactive
		}

		views = append(views, models.FreshnessView{
			DeviceID:       row.DeviceID,
			Username:       row.Username,
			Technician:     row.Technician,
			Crew:           row.Crew,
			Contractor:     row.Contractor,
			Latitude:       row.Latitude,
			Longitude:      row.Longitude,
			RecordedAt:     row.RecordedAt,
			MinutesElapsed: minutes,
			Status:         status,
		})
	}

	return views
}
