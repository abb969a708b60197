// FilePath: internal/localstore/localstore.apiaries.go
package localstore

import (
	"context"
	"encoding/json"

	"github.com/honeyroute/honeyroute/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// Apiaries returns all valid locally created apiaries. Elements missing
// a string id or name are dropped individually.
func (a *Adapter) Apiaries(ctx context.Context) []models.Apiary {
	elems := a.readRawArray(ctx, KeyApiaries)
	out := make([]models.Apiary, 0, len(elems))
	for _, m := range elems {
		id, ok := stringField(m, "id")
		if !ok {
			continue
		}
		name, ok := stringField(m, "name")
		if !ok {
			continue
		}
		location, _ := stringField(m, "location")
		notes, _ := stringField(m, "notes")
		mgmt, _ := stringField(m, "mgmt")
		imageURL, _ := stringField(m, "imageUrl")

		out = append(out, models.Apiary{
			ID:        id,
			Name:      name,
			Location:  location,
			Latitude:  floatField(m, "lat"),
			Longitude: floatField(m, "lng"),
			Elevation: floatField(m, "elevation"),
			Mgmt:      models.Management(mgmt),
			Notes:     notes,
			ImageURL:  imageURL,
			Source:    models.SourceLocal,
		})
	}
	return out
}

// AppendApiary persists a new local apiary onto the stored collection.
// Existing elements are carried over as written, so records another
// writer stored with extra or unvalidated fields survive the append.
func (a *Adapter) AppendApiary(ctx context.Context, apiary models.Apiary) error {
	apiary.Source = models.SourceLocal
	if err := a.appendJSON(ctx, KeyApiaries, apiary); err != nil {
		return err
	}
	nuts.L.Infof("[LocalStore] Stored local apiary %s (%s)", apiary.Name, apiary.ID)
	return nil
}

// ActiveApiary returns the record under hr.apiary, or nil when absent
// or malformed.
func (a *Adapter) ActiveApiary(ctx context.Context) *models.ActiveApiary {
	raw, ok, err := a.store.Get(ctx, KeyActiveApiary)
	if err != nil || !ok {
		return nil
	}
	var rec models.ActiveApiary
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.ID == "" {
		return nil
	}
	return &rec
}

// SetActiveApiary replaces the active-apiary record.
func (a *Adapter) SetActiveApiary(ctx context.Context, rec models.ActiveApiary) error {
	return a.writeJSON(ctx, KeyActiveApiary, rec)
}
