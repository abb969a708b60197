// FilePath: internal/aggregate/kpi.go
package aggregate

import (
	"math/rand"

	"github.com/honeyroute/honeyroute/internal/i18n"
	"github.com/honeyroute/honeyroute/internal/models"
)

// Band classifies a KPI value: >=75 ok, >=50 warn, else crit.
func Band(v int) models.KPIBand {
	switch {
	case v >= 75:
		return models.BandOK
	case v >= 50:
		return models.BandWarn
	default:
		return models.BandCrit
	}
}

// kpiBases are the fixed formula bases; the resulting value is
// base (+ hive count for the two count-sensitive gauges), clamped.
// These are synthetic demo metrics and must stay deterministic: the
// same hive count always yields the same values.
var kpiBases = []struct {
	key        string
	base       int
	countBased bool
	hintEN     string
}{
	{key: "status", base: 88, countBased: true, hintEN: "Active"},
	{key: "health", base: 86, countBased: true},
	{key: "queen", base: 96, hintEN: "100% last inspection"},
	{key: "brood", base: 84},
	{key: "honey", base: 76},
	{key: "pollen", base: 74},
	{key: "population", base: 80},
	{key: "disease", base: 97, hintEN: "None detected"},
}

// kpiFallbacks label the gauges when the message bundle misses a key.
var kpiFallbacks = map[string]string{
	"status":     "Status",
	"health":     "Health",
	"queen":      "Queen Presence",
	"brood":      "Brood Pattern",
	"honey":      "Honey Stores",
	"pollen":     "Pollen Stores",
	"population": "Bee Population",
	"disease":    "Disease/Pest",
}

// BuildKPIs derives the deterministic apiary gauges from the hive count,
// localizing labels through the message bundles with hardcoded English
// fallbacks.
func BuildKPIs(hiveCount int, locale i18n.Locale) []models.KPI {
	n := hiveCount
	if n < 1 {
		n = 1
	}

	out := make([]models.KPI, 0, len(kpiBases))
	for _, def := range kpiBases {
		v := def.base
		if def.countBased {
			v += n
		}
		v = models.ClampScore(v)
		out = append(out, models.KPI{
			Key:   def.key,
			Label: i18n.TV(locale, "hive.kpi."+def.key, kpiFallbacks[def.key]),
			Value: v,
			Hint:  def.hintEN,
			Band:  Band(v),
		})
	}
	return out
}

// BuildAdvancedGauges produces the "advanced" tab gauges. These are
// intentionally randomized on every call for demo visual variety; do
// not make them deterministic.
func BuildAdvancedGauges() models.AdvancedGauges {
	rnd := func(a, b float64) float64 { return a + rand.Float64()*(b-a) }

	mortality := make([]int, 10)
	for i := range mortality {
		mortality[i] = int(rnd(80, 320))
	}

	return models.AdvancedGauges{
		VarroaPct:    rnd(2.3, 6.8),
		EstYieldKg:   rnd(10, 22),
		WeightNowKg:  rnd(18, 28),
		WeightGoalKg: 26,
		Mortality7d:  mortality,
		TempC:        rnd(31, 38),
		CO2Ppm:       rnd(800, 1800),
		O2Pct:        rnd(17, 21),
		PesticidePpb: rnd(0, 3.2),
	}
}
