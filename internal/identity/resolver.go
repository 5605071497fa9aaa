// Package identity maps device identifiers to crew attribution.
package identity

import (
	"context"
	"fmt"

	"github.com/TheKazutoPe/MONITOREO-GPS/internal/metrics"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/models"
)

// Attribution is the enrichment merged into a location record at write
// time. The zero value (all fields empty) is the documented default for
// unregistered devices.
type Attribution struct {
	Technician string
	Crew       string
	Contractor string
}

// ProfileStore is the read side of the profile table the resolver needs.
type ProfileStore interface {
	ByTelegramID(ctx context.Context, telegramID string) (*models.TechnicianProfile, error)
}

type Resolver struct {
	profiles ProfileStore
}

func NewResolver(profiles ProfileStore) *Resolver {
	return &Resolver{profiles: profiles}
}

// Resolve looks up attribution for a device id. A miss yields an empty
// Attribution with no error; store failures propagate without retry.
func (r *Resolver) Resolve(ctx context.Context, deviceID string) (Attribution, error) {
	profile, err := r.profiles.ByTelegramID(ctx, deviceID)
	if err != nil {
		return Attribution{}, fmt.Errorf("profile lookup for %s: %w", deviceID, err)
	}

	if profile == nil {
		metrics.ProfileMissesTotal.Inc()
		return Attribution{}, nil
	}

	return Attribution{
		Technician: profile.Technician,
		Crew:       profile.Crew,
		Contractor: profile.Contractor,
	}, nil
}
