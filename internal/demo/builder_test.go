// FilePath: internal/demo/builder_test.go
package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeyroute/honeyroute/internal/i18n"
	"github.com/honeyroute/honeyroute/internal/models"
)

func TestBuildFleetShape(t *testing.T) {
	t.Parallel()

	fleet := BuildFleet(i18n.LocaleEN)
	require.Len(t, fleet.Apiaries, 2)
	require.Len(t, fleet.Hives, 5)

	for _, a := range fleet.Apiaries {
		assert.Equal(t, models.SourceDemo, a.Source)
		require.NotNil(t, a.Latitude)
		require.NotNil(t, a.Longitude)
		require.NotNil(t, a.Elevation)
	}
	for _, h := range fleet.Hives {
		assert.Equal(t, models.SourceDemo, h.Source)
		assert.GreaterOrEqual(t, h.HealthScore, 0)
		assert.LessOrEqual(t, h.HealthScore, 100)
	}
}

func TestBuildFleetEnglishProjection(t *testing.T) {
	t.Parallel()

	fleet := BuildFleet(i18n.LocaleEN)
	assert.Equal(t, "Azul's Rooftop Apiary", fleet.Apiaries[0].Name)
	assert.Equal(t, "Héctor's Hillside Apiary", fleet.Apiaries[1].Name)
	assert.Equal(t, "Hive A-03 · Experimental", fleet.Hives[2].Label)
}

func TestBuildFleetSpanishProjection(t *testing.T) {
	t.Parallel()

	fleet := BuildFleet(i18n.LocaleES)
	assert.Equal(t, "Apiario en azotea de Azul", fleet.Apiaries[0].Name)
	assert.Equal(t, "Colmena A-03 · Experimental", fleet.Hives[2].Label)

	// Placement and classification do not vary with language.
	en := BuildFleet(i18n.LocaleEN)
	assert.Equal(t, *en.Apiaries[0].Latitude, *fleet.Apiaries[0].Latitude)
	assert.Equal(t, en.Hives[2].Status, fleet.Hives[2].Status)
	assert.Equal(t, en.Hives[2].HealthScore, fleet.Hives[2].HealthScore)
}

func TestBuildFleetUnknownLocaleBehavesAsEnglish(t *testing.T) {
	t.Parallel()

	fr := BuildFleet(i18n.Locale("fr"))
	en := BuildFleet(i18n.LocaleEN)
	assert.Equal(t, en, fr)
}

func TestBuildFleetReturnsFreshSlices(t *testing.T) {
	t.Parallel()

	a := BuildFleet(i18n.LocaleEN)
	b := BuildFleet(i18n.LocaleEN)
	assert.Equal(t, a, b)

	// Mutating one build must not leak into the next.
	a.Apiaries[0].Name = "mutated"
	a.Hives[0].Label = "mutated"
	c := BuildFleet(i18n.LocaleEN)
	assert.Equal(t, "Azul's Rooftop Apiary", c.Apiaries[0].Name)
	assert.Equal(t, "Hive A-01 · Rooftop", c.Hives[0].Label)
}

func TestBuildFleetBaseData(t *testing.T) {
	t.Parallel()

	fleet := BuildFleet(i18n.LocaleEN)

	azul := fleet.Apiaries[0]
	assert.Equal(t, "apiary-azul", azul.ID)
	assert.InDelta(t, 19.4326, *azul.Latitude, 1e-9)
	assert.InDelta(t, -99.1332, *azul.Longitude, 1e-9)
	assert.InDelta(t, 2240, *azul.Elevation, 1e-9)
	assert.Equal(t, models.ManagementIntegrated, azul.Mgmt)
	assert.Equal(t, models.StatusAttention, azul.Status)

	hector := fleet.Apiaries[1]
	assert.Equal(t, "apiary-hector", hector.ID)
	assert.Equal(t, models.ManagementOrganic, hector.Mgmt)
	assert.Equal(t, models.StatusHealthy, hector.Status)

	scores := map[string]int{}
	kinds := map[string]models.HiveKind{}
	for _, h := range fleet.Hives {
		scores[h.ID] = h.HealthScore
		kinds[h.ID] = h.Kind
	}
	assert.Equal(t, 78, scores["hive-azul-a01"])
	assert.Equal(t, 88, scores["hive-azul-a02"])
	assert.Equal(t, 52, scores["hive-azul-a03"])
	assert.Equal(t, 90, scores["hive-hector-h01"])
	assert.Equal(t, 74, scores["hive-hector-h02"])
	assert.Equal(t, models.KindTopBar, kinds["hive-azul-a03"])
	assert.Equal(t, models.KindWarre, kinds["hive-hector-h02"])
}

func TestBuildAlerts(t *testing.T) {
	t.Parallel()

	before := time.Now()
	alerts := BuildAlerts(i18n.LocaleEN)
	require.Len(t, alerts, 5)

	byID := map[string]models.Alert{}
	for _, a := range alerts {
		byID[a.ID] = a
		assert.False(t, a.Resolved)
	}

	a1 := byID["a1"]
	assert.Equal(t, models.AlertTemp, a1.Type)
	assert.Equal(t, models.SeverityHigh, a1.Severity)
	assert.Equal(t, "hive-azul-a01", a1.Hive.ID)
	assert.Equal(t, "Hive A-01 · Rooftop", a1.Hive.Name)
	assert.Equal(t, "alerts.items.a1.list", a1.ListKey)

	// a5 predates the list-key convention and carries only literal text.
	a5 := byID["a5"]
	assert.Empty(t, a5.ListKey)
	assert.Equal(t, "Low Humidity", a5.ListText)

	// CreatedAt is the fixed minute offset from build time.
	age := before.Sub(a1.CreatedAt)
	assert.GreaterOrEqual(t, age, 11*time.Minute)
	assert.LessOrEqual(t, age, 13*time.Minute)
}

func TestBuildAlertsSpanishSnapshot(t *testing.T) {
	t.Parallel()

	alerts := BuildAlerts(i18n.LocaleES)
	byID := map[string]models.Alert{}
	for _, a := range alerts {
		byID[a.ID] = a
	}

	// The embedded hive snapshot follows the requested locale, matching
	// the fleet projection it will be displayed next to.
	assert.Equal(t, "Colmena A-03 · Experimental", byID["a3"].Hive.Name)
	assert.Equal(t, "Temperatura alta detectada", byID["a1"].Title)
	assert.Equal(t, "Temperatura alta", byID["a1"].ListText)
}
