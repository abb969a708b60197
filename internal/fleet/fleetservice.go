// FilePath: internal/fleet/fleetservice.go
package fleet

import (
	"context"

	"github.com/honeyroute/honeyroute/internal/demo"
	"github.com/honeyroute/honeyroute/internal/i18n"
	"github.com/honeyroute/honeyroute/internal/localstore"
	nuts "github.com/vaudience/go-nuts"
)

// FleetService is the engine façade: it projects the demo dataset for
// the active locale, merges in locally created entities and exposes the
// create/resolve operations. All reads rebuild the demo fleet fresh, so
// a locale change only needs a re-invocation, never an invalidation.
type FleetService struct {
	local  *localstore.Adapter
	policy MergePolicy
	events *nuts.EventEmitter
}

// New creates a FleetService over the local-entity adapter with the
// demo-priority merge policy.
func New(local *localstore.Adapter) *FleetService {
	return &FleetService{
		local:  local,
		policy: DemoPriorityMerge{},
		events: nuts.NewEventEmitter(),
	}
}

// Locale resolves the active locale for a request: explicit override
// first, then the persisted preference, then the ambient language
// signal, then English.
func (s *FleetService) Locale(ctx context.Context, explicit, ambient string) i18n.Locale {
	if i18n.Known(explicit) {
		return i18n.Locale(explicit)
	}
	return i18n.ResolveLocale(s.local.LocalePreference(ctx), ambient)
}

// Fleet returns the merged fleet for locale: the locale-projected demo
// entities, then any net-new local entities.
func (s *FleetService) Fleet(ctx context.Context, locale i18n.Locale) demo.Fleet {
	base := demo.BuildFleet(locale)
	return demo.Fleet{
		Apiaries: s.policy.MergeApiaries(base.Apiaries, s.local.Apiaries(ctx)),
		Hives:    s.policy.MergeHives(base.Hives, s.local.Hives(ctx)),
	}
}

// SeedDemo runs the one-time first-run seed with the English projection,
// matching what the original seed routine wrote. Local records are never
// re-localized afterwards.
func (s *FleetService) SeedDemo(ctx context.Context) (bool, error) {
	base := demo.BuildFleet(i18n.DefaultLocale)
	seeded, err := s.local.SeedDemo(ctx, base.Apiaries, base.Hives)
	if err != nil {
		return false, err
	}
	if seeded {
		s.events.Emit("demo.seeded", "demo")
	}
	return seeded, nil
}

// OnEvent registers a callback for fleet events (apiary.created,
// hive.created, alert.resolved, demo.seeded). The payload is the
// affected entity id.
func (s *FleetService) OnEvent(event string, handler func(id string)) {
	s.events.On(event, "fleet_handler", func(id string) {
		handler(id)
	})
}
