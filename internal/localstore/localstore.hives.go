// FilePath: internal/localstore/localstore.hives.go
package localstore

import (
	"context"

	"github.com/honeyroute/honeyroute/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// Hives returns all valid locally created hives. The owning apiary id is
// required (the seed routine historically wrote both "apiaryId" and
// "apiary_id", so both spellings are accepted); elements without a
// string id or apiary id are dropped individually. Coordinates default
// to nil when absent or wrong-typed.
func (a *Adapter) Hives(ctx context.Context) []models.Hive {
	elems := a.readRawArray(ctx, KeyHives)
	out := make([]models.Hive, 0, len(elems))
	for _, m := range elems {
		id, ok := stringField(m, "id")
		if !ok {
			continue
		}
		apiaryID, ok := stringField(m, "apiaryId")
		if !ok {
			apiaryID, ok = stringField(m, "apiary_id")
		}
		if !ok {
			continue
		}
		label, ok := stringField(m, "label")
		if !ok {
			continue
		}
		kind, _ := stringField(m, "kind")
		notes, _ := stringField(m, "notes")

		out = append(out, models.Hive{
			ID:        id,
			ApiaryID:  apiaryID,
			Label:     label,
			Kind:      models.NormalizeHiveKind(kind),
			Latitude:  floatField(m, "lat"),
			Longitude: floatField(m, "lng"),
			Notes:     notes,
			Source:    models.SourceLocal,
		})
	}
	return out
}

// AppendHive persists a new local hive onto the stored collection,
// carrying existing elements over as written.
func (a *Adapter) AppendHive(ctx context.Context, hive models.Hive) error {
	hive.Source = models.SourceLocal
	if err := a.appendJSON(ctx, KeyHives, hive); err != nil {
		return err
	}
	nuts.L.Infof("[LocalStore] Stored local hive %s (%s)", hive.Label, hive.ID)
	return nil
}
