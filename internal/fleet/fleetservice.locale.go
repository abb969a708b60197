// FilePath: internal/fleet/fleetservice.locale.go
package fleet

import (
	"context"

	"github.com/honeyroute/honeyroute/internal/errors"
	"github.com/honeyroute/honeyroute/internal/i18n"
	nuts "github.com/vaudience/go-nuts"
)

// LocalePreference exposes the raw persisted locale toggle, empty when
// unset.
func (s *FleetService) LocalePreference(ctx context.Context) string {
	return s.local.LocalePreference(ctx)
}

// SetLocale persists the locale toggle. Only known tags are accepted;
// the engine does not silently store an unsupported language.
func (s *FleetService) SetLocale(ctx context.Context, raw string) (i18n.Locale, error) {
	if !i18n.Known(raw) {
		return "", errors.NewValidationError("locale must be en or es", nil)
	}
	locale, err := s.local.SetLocalePreference(ctx, raw)
	if err != nil {
		return "", errors.NewStorageError("failed to store locale", err)
	}
	nuts.L.Infof("[FleetService] Locale preference set to %s", locale)
	return locale, nil
}
