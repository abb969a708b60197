// FilePath: internal/fleet/fleetservice.hive.go
package fleet

import (
	"context"

	"github.com/honeyroute/honeyroute/internal/errors"
	"github.com/honeyroute/honeyroute/internal/i18n"
	"github.com/honeyroute/honeyroute/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateHive stores a new local hive. The owning apiary id is the one
// genuinely required identity: without it the engine declines to produce
// a record. Coordinates are optional, pending placement. When present, a
// map highlight handoff is written so the map can center on the new
// hive, the way the creation flow did.
func (s *FleetService) CreateHive(ctx context.Context, hive *models.Hive) error {
	if hive.ApiaryID == "" {
		return errors.NewValidationError("hive apiary id is required", nil)
	}
	if hive.Label == "" {
		return errors.NewValidationError("hive label is required", nil)
	}
	if hive.ID == "" {
		hive.ID = nuts.NID("hv", 12)
	}
	if hive.Kind == "" {
		hive.Kind = models.KindOther
	}
	hive.Source = models.SourceLocal

	if err := s.local.AppendHive(ctx, *hive); err != nil {
		return errors.NewStorageError("failed to store hive", err)
	}

	if hive.Latitude != nil && hive.Longitude != nil {
		highlight := models.MapHighlight{
			HiveID:    hive.ID,
			Name:      hive.Label,
			Latitude:  *hive.Latitude,
			Longitude: *hive.Longitude,
		}
		if err := s.local.SetMapHighlight(ctx, highlight); err != nil {
			nuts.L.Warnf("[FleetService] Failed to store map highlight for %s: %v", hive.ID, err)
		}
	}

	nuts.L.Infof("[FleetService] Created local hive %s (%s) in apiary %s", hive.Label, hive.ID, hive.ApiaryID)
	s.events.Emit("hive.created", hive.ID)
	return nil
}

// Hive looks a hive up in the merged fleet.
func (s *FleetService) Hive(ctx context.Context, locale i18n.Locale, id string) (*models.Hive, error) {
	for _, h := range s.Fleet(ctx, locale).Hives {
		if h.ID == id {
			return &h, nil
		}
	}
	return nil, errors.NewNotFoundError("hive not found", nil)
}

// TakeMapHighlight hands the pending map highlight to the caller and
// clears it.
func (s *FleetService) TakeMapHighlight(ctx context.Context) *models.MapHighlight {
	return s.local.TakeMapHighlight(ctx)
}

// SetMapHighlight stores a map handoff record.
func (s *FleetService) SetMapHighlight(ctx context.Context, rec models.MapHighlight) error {
	return s.local.SetMapHighlight(ctx, rec)
}
