// FilePath: internal/demo/builder.go
package demo

import (
	"time"

	"github.com/honeyroute/honeyroute/internal/i18n"
	"github.com/honeyroute/honeyroute/internal/models"
)

// Fleet is the locale-projected demo fleet. Fresh value on every build;
// demo entities are never cached across locale changes.
type Fleet struct {
	Apiaries []models.Apiary `json:"apiaries"`
	Hives    []models.Hive   `json:"hives"`
}

// BuildFleet projects the bilingual base dataset into a single-language
// fleet. Unknown locales behave as English. Pure and deterministic for a
// given locale: two calls yield field-for-field identical output, always
// as distinct slices.
func BuildFleet(locale i18n.Locale) Fleet {
	locale = i18n.Normalize(string(locale))

	apiaries := make([]models.Apiary, 0, len(baseApiaries))
	for _, a := range baseApiaries {
		lat, lng, elev := a.Lat, a.Lng, a.Elevation
		apiaries = append(apiaries, models.Apiary{
			ID:        a.ID,
			Name:      a.Name.For(locale),
			Location:  a.Location.For(locale),
			Latitude:  &lat,
			Longitude: &lng,
			Elevation: &elev,
			Mgmt:      a.Mgmt,
			Notes:     a.Notes.ForWithFallback(locale),
			Status:    a.Status,
			ImageURL:  a.ImageURL,
			Source:    models.SourceDemo,
		})
	}

	hives := make([]models.Hive, 0, len(baseHives))
	for _, h := range baseHives {
		lat, lng := h.Lat, h.Lng
		hives = append(hives, models.Hive{
			ID:          h.ID,
			ApiaryID:    h.ApiaryID,
			Label:       h.Label.For(locale),
			Kind:        h.Kind,
			Latitude:    &lat,
			Longitude:   &lng,
			Status:      h.Status,
			HealthScore: models.ClampScore(h.HealthScore),
			Source:      models.SourceDemo,
		})
	}

	return Fleet{Apiaries: apiaries, Hives: hives}
}

// BuildAlerts projects the demo alerts for a locale. The embedded hive
// snapshot is re-derived from the base hive records so its name matches
// the locale of the rest of the fleet. Timestamps are fixed minute
// offsets from now, matching the original mock data.
func BuildAlerts(locale i18n.Locale) []models.Alert {
	locale = i18n.Normalize(string(locale))
	now := time.Now()

	hivesByID := make(map[string]baseHive, len(baseHives))
	for _, h := range baseHives {
		hivesByID[h.ID] = h
	}

	alerts := make([]models.Alert, 0, len(baseAlerts))
	for _, a := range baseAlerts {
		h := hivesByID[a.HiveID]
		alerts = append(alerts, models.Alert{
			ID:        a.ID,
			Type:      a.Type,
			Severity:  a.Severity,
			CreatedAt: now.Add(-time.Duration(a.AgeMinutes) * time.Minute),
			Title:     a.Title.For(locale),
			ListKey:   a.ListKey,
			ListText:  a.ListText.For(locale),
			Hive: models.AlertHive{
				ID:        h.ID,
				Name:      h.Label.For(locale),
				Latitude:  h.Lat,
				Longitude: h.Lng,
				ApiaryID:  h.ApiaryID,
			},
			Cause:   a.Cause.For(locale),
			Details: a.Details.For(locale),
		})
	}
	return alerts
}
