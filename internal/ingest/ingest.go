// Package ingest turns inbound Telegram updates into stored location
// events.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/TheKazutoPe/MONITOREO-GPS/internal/identity"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/models"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/telegram"
)

// Outcome tags the result of processing one update. Failures are the
// third arm, reported through the error return.
type Outcome int

const (
	// OutcomeNoLocation means the update carried no location and
	// nothing was written. Common and not an error.
	OutcomeNoLocation Outcome = iota
	// OutcomeStored means one enriched event was written.
	OutcomeStored
)

// EventWriter persists location events.
type EventWriter interface {
	Create(ctx context.Context, ev *models.LocationEvent) error
}

// AttributionResolver maps a device id to crew attribution.
type AttributionResolver interface {
	Resolve(ctx context.Context, deviceID string) (identity.Attribution, error)
}

type Service struct {
	events   EventWriter
	resolver AttributionResolver
	now      func() time.Time
}

func NewService(events EventWriter, resolver AttributionResolver) *Service {
	return &Service{
		events:   events,
		resolver: resolver,
		now:      time.Now,
	}
}

// NewServiceWithClock is NewService with an injected clock for tests.
func NewServiceWithClock(events EventWriter, resolver AttributionResolver, now func() time.Time) *Service {
	s := NewService(events, resolver)
	s.now = now
	return s
}

// Process handles one update. Updates without a location resolve to
// OutcomeNoLocation with zero writes. Updates with a location are
// enriched and written once, with recorded_at assigned here in UTC.
func (s *Service) Process(ctx context.Context, update telegram.Update) (Outcome, error) {
	loc := update.SharedLocation()
	if loc == nil {
		return OutcomeNoLocation, nil
	}

	deviceID := update.DeviceID()

	var attr identity.Attribution
	if deviceID != "" {
		var err error
		attr, err = s.resolver.Resolve(ctx, deviceID)
		if err != nil {
			return 0, fmt.Errorf("resolve device: %w", err)
		}
	}

	ev := &models.LocationEvent{
		DeviceID:   deviceID,
		Username:   update.Username(),
		Technician: attr.Technician,
		Crew:       attr.Crew,
		Contractor: attr.Contractor,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		RecordedAt: s.now().UTC(),
	}

	if err := s.events.Create(ctx, ev); err != nil {
		return 0, fmt.Errorf("store location: %w", err)
	}

	return OutcomeStored, nil
}
