// FilePath: internal/models/models.kpi.go
package models

// KPIBand classifies a KPI value: >=75 ok, >=50 warn, else crit.
type KPIBand string

const (
	BandOK   KPIBand = "ok"
	BandWarn KPIBand = "warn"
	BandCrit KPIBand = "crit"
)

// KPI is one derived apiary gauge. Values are synthetic demo metrics,
// deterministic in the hive count, not sensor measurements.
type KPI struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value int     `json:"value"`
	Hint  string  `json:"hint,omitempty"`
	Band  KPIBand `json:"band"`
}

// AdvancedGauges are the intentionally randomized demo gauges shown on
// the apiary "advanced" tab. Fresh random values on every build.
type AdvancedGauges struct {
	VarroaPct    float64 `json:"varroaPct"`
	EstYieldKg   float64 `json:"estYieldKg"`
	WeightNowKg  float64 `json:"weightNowKg"`
	WeightGoalKg float64 `json:"weightGoalKg"`
	Mortality7d  []int   `json:"mortality7d"`
	TempC        float64 `json:"tempC"`
	CO2Ppm       float64 `json:"co2Ppm"`
	O2Pct        float64 `json:"o2Pct"`
	PesticidePpb float64 `json:"pesticidePpb"`
}

// HiveAlertCount is one row of the top-hives-by-alerts ranking.
type HiveAlertCount struct {
	HiveID   string `json:"hiveId"`
	HiveName string `json:"hiveName"`
	Count    int    `json:"count"`
}

// AlertSummary is the per-hive severity breakdown. All three counters are
// always present, zero-filled when nothing matches.
type AlertSummary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}
