// FilePath: internal/localstore/localstore.prefs.go
package localstore

import (
	"context"
	"encoding/json"

	"github.com/honeyroute/honeyroute/internal/i18n"
	"github.com/honeyroute/honeyroute/internal/models"
)

// LocalePreference returns the persisted locale preference, empty when
// none is stored. Validation of the value is the resolver's job.
func (a *Adapter) LocalePreference(ctx context.Context) string {
	raw, ok, err := a.store.Get(ctx, KeyLocale)
	if err != nil || !ok {
		return ""
	}
	return raw
}

// SetLocalePreference persists the locale toggle. Unknown values are
// normalized to English before storing.
func (a *Adapter) SetLocalePreference(ctx context.Context, raw string) (i18n.Locale, error) {
	locale := i18n.Normalize(raw)
	return locale, a.store.Set(ctx, KeyLocale, string(locale))
}

// MapHighlight returns the pending map handoff record without removing
// it, or nil when absent or malformed.
func (a *Adapter) MapHighlight(ctx context.Context) *models.MapHighlight {
	raw, ok, err := a.store.Get(ctx, KeyMapHighlight)
	if err != nil || !ok {
		return nil
	}
	var rec models.MapHighlight
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.HiveID == "" {
		return nil
	}
	return &rec
}

// TakeMapHighlight returns the pending handoff and removes it, the way
// the map view consumes it exactly once.
func (a *Adapter) TakeMapHighlight(ctx context.Context) *models.MapHighlight {
	rec := a.MapHighlight(ctx)
	if rec != nil {
		_ = a.store.Delete(ctx, KeyMapHighlight)
	}
	return rec
}

// SetMapHighlight stores a handoff record for the map view.
func (a *Adapter) SetMapHighlight(ctx context.Context, rec models.MapHighlight) error {
	return a.writeJSON(ctx, KeyMapHighlight, rec)
}

// ResolvedAlertIDs returns the ids of alerts the user marked resolved.
func (a *Adapter) ResolvedAlertIDs(ctx context.Context) []string {
	raw, ok, err := a.store.Get(ctx, KeyResolvedAlerts)
	if err != nil || !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}

// ResolveAlert appends an alert id to the resolved list, deduplicating.
func (a *Adapter) ResolveAlert(ctx context.Context, id string) error {
	ids := a.ResolvedAlertIDs(ctx)
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return a.writeJSON(ctx, KeyResolvedAlerts, append(ids, id))
}
