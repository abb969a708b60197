// FilePath: internal/fleet/fleetservice.apiary.go
package fleet

import (
	"context"

	"github.com/honeyroute/honeyroute/internal/errors"
	"github.com/honeyroute/honeyroute/internal/i18n"
	"github.com/honeyroute/honeyroute/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateApiary stores a new local apiary. The name is the one required
// field; a missing id is generated. The new apiary also becomes the
// active one, the way the creation form promoted it.
func (s *FleetService) CreateApiary(ctx context.Context, apiary *models.Apiary) error {
	if apiary.Name == "" {
		return errors.NewValidationError("apiary name is required", nil)
	}
	if apiary.ID == "" {
		apiary.ID = nuts.NID("apy", 12)
	}
	apiary.Source = models.SourceLocal

	if err := s.local.AppendApiary(ctx, *apiary); err != nil {
		return errors.NewStorageError("failed to store apiary", err)
	}

	active := models.ActiveApiary{
		ID:        apiary.ID,
		Name:      apiary.Name,
		Location:  apiary.Location,
		Latitude:  apiary.Latitude,
		Longitude: apiary.Longitude,
	}
	if err := s.local.SetActiveApiary(ctx, active); err != nil {
		nuts.L.Warnf("[FleetService] Failed to set active apiary %s: %v", apiary.ID, err)
	}

	nuts.L.Infof("[FleetService] Created local apiary %s (%s)", apiary.Name, apiary.ID)
	s.events.Emit("apiary.created", apiary.ID)
	return nil
}

// Apiary looks an apiary up in the merged fleet.
func (s *FleetService) Apiary(ctx context.Context, locale i18n.Locale, id string) (*models.Apiary, error) {
	for _, a := range s.Fleet(ctx, locale).Apiaries {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, errors.NewNotFoundError("apiary not found", nil)
}

// ApiaryHives returns the hives of one apiary from the merged fleet, in
// merge order.
func (s *FleetService) ApiaryHives(ctx context.Context, locale i18n.Locale, apiaryID string) []models.Hive {
	var out []models.Hive
	for _, h := range s.Fleet(ctx, locale).Hives {
		if h.ApiaryID == apiaryID {
			out = append(out, h)
		}
	}
	return out
}

// ActiveApiary exposes the persisted active-apiary record.
func (s *FleetService) ActiveApiary(ctx context.Context) *models.ActiveApiary {
	return s.local.ActiveApiary(ctx)
}
