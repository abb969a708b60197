// FilePath: internal/aggregate/aggregate_test.go
package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeyroute/honeyroute/internal/models"
)

func alertFor(hiveID string, sev models.Severity) models.Alert {
	return models.Alert{
		ID:       "t-" + hiveID + "-" + string(sev),
		Severity: sev,
		Hive:     models.AlertHive{ID: hiveID, Name: "Hive " + hiveID},
	}
}

func TestAlertSummary(t *testing.T) {
	t.Parallel()

	alerts := []models.Alert{
		alertFor("h1", models.SeverityHigh),
		alertFor("h1", models.SeverityHigh),
		alertFor("h1", models.SeverityLow),
		alertFor("h2", models.SeverityMedium),
	}

	sum := AlertSummary(alerts, "h1")
	assert.Equal(t, models.AlertSummary{High: 2, Medium: 0, Low: 1}, sum)

	// A hive with no alerts still gets a fully populated summary.
	assert.Equal(t, models.AlertSummary{}, AlertSummary(alerts, "h9"))
	assert.Equal(t, models.AlertSummary{}, AlertSummary(nil, "h1"))
}

func TestTopHivesByAlerts(t *testing.T) {
	t.Parallel()

	alerts := []models.Alert{
		alertFor("h1", models.SeverityLow),
		alertFor("h2", models.SeverityLow),
		alertFor("h2", models.SeverityHigh),
		alertFor("h3", models.SeverityLow),
		alertFor("h3", models.SeverityMedium),
		alertFor("h3", models.SeverityHigh),
		alertFor("h4", models.SeverityLow),
	}

	top := TopHivesByAlerts(alerts, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "h3", top[0].HiveID)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, "h2", top[1].HiveID)
	// h1 and h4 tie on 1; first encounter wins.
	assert.Equal(t, "h1", top[2].HiveID)
}

func TestTopHivesByAlertsTieStability(t *testing.T) {
	t.Parallel()

	alerts := []models.Alert{
		alertFor("h1", models.SeverityLow),
		alertFor("h2", models.SeverityLow),
		alertFor("h3", models.SeverityLow),
	}

	// All tie: ranking must be the encounter order, every call.
	for i := 0; i < 5; i++ {
		top := TopHivesByAlerts(alerts, 3)
		require.Len(t, top, 3)
		assert.Equal(t, "h1", top[0].HiveID)
		assert.Equal(t, "h2", top[1].HiveID)
		assert.Equal(t, "h3", top[2].HiveID)
	}
}

func TestTopHivesByAlertsBounds(t *testing.T) {
	t.Parallel()

	alerts := []models.Alert{alertFor("h1", models.SeverityLow)}

	// n larger than the distinct hive count returns them all.
	assert.Len(t, TopHivesByAlerts(alerts, 10), 1)

	// n <= 0 yields an empty, non-nil slice.
	empty := TopHivesByAlerts(alerts, 0)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.Empty(t, TopHivesByAlerts(alerts, -1))

	// No alerts at all.
	assert.Empty(t, TopHivesByAlerts(nil, 4))
}

func TestClassifyApiary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		statuses []models.ApiaryStatus
		want     models.ApiaryStatus
	}{
		{
			name:     "critical beats everything",
			statuses: []models.ApiaryStatus{models.StatusHealthy, models.StatusAttention, models.StatusCritical},
			want:     models.StatusCritical,
		},
		{
			name:     "attention beats healthy",
			statuses: []models.ApiaryStatus{models.StatusHealthy, models.StatusAttention},
			want:     models.StatusAttention,
		},
		{
			name:     "all healthy",
			statuses: []models.ApiaryStatus{models.StatusHealthy, models.StatusHealthy},
			want:     models.StatusHealthy,
		},
		{
			name:     "no hives means healthy",
			statuses: nil,
			want:     models.StatusHealthy,
		},
		{
			name:     "unknown statuses fall through to healthy",
			statuses: []models.ApiaryStatus{""},
			want:     models.StatusHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hives := make([]models.Hive, 0, len(tt.statuses))
			for i, s := range tt.statuses {
				hives = append(hives, models.Hive{ID: string(rune('a' + i)), Status: s})
			}
			assert.Equal(t, tt.want, ClassifyApiary(hives))
		})
	}
}

func TestRiskLevel(t *testing.T) {
	t.Parallel()

	alerts := []models.Alert{
		alertFor("h1", models.SeverityLow),
		alertFor("h1", models.SeverityHigh),
		alertFor("h2", models.SeverityMedium),
		alertFor("h3", models.SeverityLow),
	}

	assert.Equal(t, models.RiskHigh, RiskLevel(alerts, "h1"))
	assert.Equal(t, models.RiskMedium, RiskLevel(alerts, "h2"))
	assert.Equal(t, models.RiskLow, RiskLevel(alerts, "h3"))
	assert.Equal(t, models.RiskNone, RiskLevel(alerts, "h4"))
	assert.Equal(t, models.RiskNone, RiskLevel(nil, "h1"))
}

func TestGroupByApiary(t *testing.T) {
	t.Parallel()

	hives := []models.Hive{
		{ID: "d1", ApiaryID: "apiary-azul", Source: models.SourceDemo},
		{ID: "d2", ApiaryID: "apiary-hector", Source: models.SourceDemo},
		{ID: "d3", ApiaryID: "apiary-azul", Source: models.SourceDemo},
		{ID: "l1", ApiaryID: "apiary-azul", Source: models.SourceLocal},
		{ID: "l2", ApiaryID: "apy_new", Source: models.SourceLocal},
	}

	groups := GroupByApiary(hives)
	require.Len(t, groups, 3)

	// First-appearance order.
	assert.Equal(t, "apiary-azul", groups[0].ApiaryID)
	assert.Equal(t, "apiary-hector", groups[1].ApiaryID)
	assert.Equal(t, "apy_new", groups[2].ApiaryID)

	// Mixed provenance is tagged as such; uniform groups keep their tag.
	assert.Equal(t, models.SourceMixed, groups[0].Source)
	assert.Equal(t, models.SourceDemo, groups[1].Source)
	assert.Equal(t, models.SourceLocal, groups[2].Source)

	assert.Len(t, groups[0].Hives, 3)
	assert.Len(t, groups[1].Hives, 1)

	// Empty input yields an empty, non-nil group list.
	empty := GroupByApiary(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
