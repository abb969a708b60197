// FilePath: internal/models/models_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHiveKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want HiveKind
	}{
		{raw: "langstroth", want: KindLangstroth},
		{raw: "top_bar", want: KindTopBar},
		{raw: "topbar", want: KindTopBar},
		{raw: "warre", want: KindWarre},
		{raw: "flow", want: KindFlow},
		{raw: "other", want: KindOther},
		{raw: "skep", want: KindOther},
		{raw: "", want: KindOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHiveKind(tt.raw), "raw %q", tt.raw)
	}
}

func TestHiveKindUnmarshalNormalizes(t *testing.T) {
	t.Parallel()

	var h Hive
	require.NoError(t, json.Unmarshal([]byte(`{"id":"hv_1","apiaryId":"a","label":"x","kind":"topbar"}`), &h))
	assert.Equal(t, KindTopBar, h.Kind)
}

func TestSeverityRank(t *testing.T) {
	t.Parallel()

	assert.Greater(t, SeverityHigh.Rank(), SeverityMedium.Rank())
	assert.Greater(t, SeverityMedium.Rank(), SeverityLow.Rank())
	assert.Greater(t, SeverityLow.Rank(), Severity("").Rank())
}

func TestApiaryStatusRank(t *testing.T) {
	t.Parallel()

	assert.Greater(t, StatusCritical.Rank(), StatusAttention.Rank())
	assert.Greater(t, StatusAttention.Rank(), StatusHealthy.Rank())
	assert.Greater(t, StatusHealthy.Rank(), ApiaryStatus("bogus").Rank())
}

func TestClampScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ClampScore(-7))
	assert.Equal(t, 0, ClampScore(0))
	assert.Equal(t, 52, ClampScore(52))
	assert.Equal(t, 100, ClampScore(100))
	assert.Equal(t, 100, ClampScore(250))
}

func TestAlertFiltersMatch(t *testing.T) {
	t.Parallel()

	alert := Alert{
		ID:       "a1",
		Type:     AlertTemp,
		Severity: SeverityHigh,
		Hive:     AlertHive{ID: "hive-azul-a01"},
	}

	resolved := true
	tests := []struct {
		name    string
		filters AlertFilters
		want    bool
	}{
		{name: "empty filters match all", filters: AlertFilters{}, want: true},
		{name: "severity match", filters: AlertFilters{Severity: SeverityHigh}, want: true},
		{name: "severity mismatch", filters: AlertFilters{Severity: SeverityLow}, want: false},
		{name: "type match", filters: AlertFilters{Type: AlertTemp}, want: true},
		{name: "type mismatch", filters: AlertFilters{Type: AlertQueen}, want: false},
		{name: "hive match", filters: AlertFilters{HiveID: "hive-azul-a01"}, want: true},
		{name: "hive mismatch", filters: AlertFilters{HiveID: "other"}, want: false},
		{name: "resolved mismatch", filters: AlertFilters{Resolved: &resolved}, want: false},
		{name: "combined", filters: AlertFilters{Severity: SeverityHigh, Type: AlertTemp}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.filters.Match(alert))
		})
	}
}
