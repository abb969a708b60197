// FilePath: internal/localstore/localstore.seed.go
package localstore

import (
	"context"

	"github.com/honeyroute/honeyroute/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// seededSentinel marks that the one-time demo seed already ran.
const seededSentinel = "1"

// SeedDemo runs the one-time first-run seed: it stores the first demo
// apiary as the active apiary and copies the demo hives into the local
// hive collection, then sets the hr.demoSeeded sentinel. Returns true
// when seeding actually happened. Subsequent calls are no-ops, so local
// entities created afterwards are never clobbered.
func (a *Adapter) SeedDemo(ctx context.Context, apiaries []models.Apiary, hives []models.Hive) (bool, error) {
	raw, ok, err := a.store.Get(ctx, KeyDemoSeeded)
	if err != nil {
		return false, err
	}
	if ok && raw == seededSentinel {
		return false, nil
	}

	if len(apiaries) > 0 {
		first := apiaries[0]
		rec := models.ActiveApiary{
			ID:        first.ID,
			Name:      first.Name,
			Location:  first.Location,
			Latitude:  first.Latitude,
			Longitude: first.Longitude,
		}
		if err := a.SetActiveApiary(ctx, rec); err != nil {
			return false, err
		}
	}

	// The seed copies only the identity and placement fields, the way the
	// original wrote trimmed hive records into storage.
	seeded := make([]models.Hive, 0, len(hives))
	for _, h := range hives {
		seeded = append(seeded, models.Hive{
			ID:        h.ID,
			ApiaryID:  h.ApiaryID,
			Label:     h.Label,
			Latitude:  h.Latitude,
			Longitude: h.Longitude,
			Source:    models.SourceLocal,
		})
	}
	if err := a.writeJSON(ctx, KeyHives, seeded); err != nil {
		return false, err
	}

	if err := a.store.Set(ctx, KeyDemoSeeded, seededSentinel); err != nil {
		return false, err
	}
	nuts.L.Infof("[LocalStore] Seeded demo data (%d apiaries, %d hives)", len(apiaries), len(hives))
	return true, nil
}
