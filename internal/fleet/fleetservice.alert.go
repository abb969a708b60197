// FilePath: internal/fleet/fleetservice.alert.go
package fleet

import (
	"context"
	"sort"

	"github.com/honeyroute/honeyroute/internal/demo"
	"github.com/honeyroute/honeyroute/internal/errors"
	"github.com/honeyroute/honeyroute/internal/i18n"
	"github.com/honeyroute/honeyroute/internal/models"
)

// Alerts returns the demo alerts for locale, annotated with the
// persisted resolved flags. Order is the dataset order.
func (s *FleetService) Alerts(ctx context.Context, locale i18n.Locale) []models.Alert {
	alerts := demo.BuildAlerts(locale)
	resolved := s.local.ResolvedAlertIDs(ctx)
	if len(resolved) == 0 {
		return alerts
	}
	resolvedSet := make(map[string]struct{}, len(resolved))
	for _, id := range resolved {
		resolvedSet[id] = struct{}{}
	}
	for i := range alerts {
		_, alerts[i].Resolved = resolvedSet[alerts[i].ID]
	}
	return alerts
}

// SortAlertsBySeverity orders alerts highest severity first, in place.
// The sort is stable so same-severity alerts keep dataset order.
func SortAlertsBySeverity(alerts []models.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() > alerts[j].Severity.Rank()
	})
}

// ResolveAlert marks a demo alert as resolved. Resolving an id the demo
// dataset does not know is a not-found error.
func (s *FleetService) ResolveAlert(ctx context.Context, id string) error {
	found := false
	for _, a := range demo.BuildAlerts(i18n.DefaultLocale) {
		if a.ID == id {
			found = true
			break
		}
	}
	if !found {
		return errors.NewNotFoundError("alert not found", nil)
	}
	if err := s.local.ResolveAlert(ctx, id); err != nil {
		return errors.NewStorageError("failed to store resolved alert", err)
	}
	s.events.Emit("alert.resolved", id)
	return nil
}
