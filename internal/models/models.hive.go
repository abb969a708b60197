// FilePath: internal/models/models.hive.go
package models

import "encoding/json"

// HiveKind enumerates supported hive constructions.
type HiveKind string

const (
	KindLangstroth HiveKind = "langstroth"
	KindTopBar     HiveKind = "top_bar"
	KindWarre      HiveKind = "warre"
	KindFlow       HiveKind = "flow"
	KindOther      HiveKind = "other"
)

// NormalizeHiveKind maps raw kind strings onto the canonical enum. The
// base dataset spells top-bar hives "topbar" while the creation form
// uses "top_bar"; both are accepted. Anything unrecognized becomes
// KindOther rather than failing the record.
func NormalizeHiveKind(raw string) HiveKind {
	switch HiveKind(raw) {
	case KindLangstroth, KindTopBar, KindWarre, KindFlow, KindOther:
		return HiveKind(raw)
	}
	if raw == "topbar" {
		return KindTopBar
	}
	return KindOther
}

func (k *HiveKind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*k = NormalizeHiveKind(raw)
	return nil
}

type Hive struct {
	ID        string       `json:"id"`
	ApiaryID  string       `json:"apiaryId"`
	Label     string       `json:"label"`
	Kind      HiveKind     `json:"kind,omitempty"`
	Latitude  *float64     `json:"lat,omitempty"`
	Longitude *float64     `json:"lng,omitempty"`
	Status    ApiaryStatus `json:"status,omitempty"`
	// HealthScore is only meaningful for demo hives; always in [0,100].
	HealthScore int    `json:"healthScore,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Source      Source `json:"source"`
}

// ClampScore bounds a health score to [0,100].
func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// MapHighlight is the cross-page navigation handoff persisted under
// map.highlight. It is written by creation/analysis flows and consumed
// (then removed) by the map view.
type MapHighlight struct {
	HiveID    string  `json:"hiveId"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// ApiaryGroup is one partition of the merged hive list for map display.
type ApiaryGroup struct {
	ApiaryID string `json:"apiaryId"`
	Hives    []Hive `json:"hives"`
	Source   Source `json:"source"`
}
