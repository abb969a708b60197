// FilePath: internal/aggregate/aggregate.go

// Package aggregate computes derived roll-ups over the merged fleet and
// the demo alert list. Every function here is total: empty input yields
// a well-typed zero result, never an error and never a missing field.
package aggregate

import "github.com/honeyroute/honeyroute/internal/models"

// AlertSummary counts a hive's alerts by severity. The result is always
// fully populated; a hive with no alerts gets {0,0,0}.
func AlertSummary(alerts []models.Alert, hiveID string) models.AlertSummary {
	var sum models.AlertSummary
	for _, a := range alerts {
		if a.Hive.ID != hiveID {
			continue
		}
		switch a.Severity {
		case models.SeverityHigh:
			sum.High++
		case models.SeverityMedium:
			sum.Medium++
		case models.SeverityLow:
			sum.Low++
		}
	}
	return sum
}

// TopHivesByAlerts ranks hives by alert count, descending, truncated to
// n. Ties keep first-encounter order, so the ranking is stable across
// calls. n <= 0 yields an empty (non-nil) slice.
func TopHivesByAlerts(alerts []models.Alert, n int) []models.HiveAlertCount {
	if n <= 0 {
		return []models.HiveAlertCount{}
	}

	index := make(map[string]int, len(alerts))
	counts := make([]models.HiveAlertCount, 0, len(alerts))
	for _, a := range alerts {
		if i, seen := index[a.Hive.ID]; seen {
			counts[i].Count++
			continue
		}
		index[a.Hive.ID] = len(counts)
		counts = append(counts, models.HiveAlertCount{
			HiveID:   a.Hive.ID,
			HiveName: a.Hive.Name,
			Count:    1,
		})
	}

	// Insertion-stable sort by count descending.
	for i := 1; i < len(counts); i++ {
		for j := i; j > 0 && counts[j].Count > counts[j-1].Count; j-- {
			counts[j], counts[j-1] = counts[j-1], counts[j]
		}
	}

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// ClassifyApiary derives an apiary's health from its hives: critical if
// any hive is critical, else attention if any needs attention, else
// healthy. First match wins; there is no averaging. Zero hives means
// healthy.
func ClassifyApiary(hives []models.Hive) models.ApiaryStatus {
	for _, h := range hives {
		if h.Status == models.StatusCritical {
			return models.StatusCritical
		}
	}
	for _, h := range hives {
		if h.Status == models.StatusAttention {
			return models.StatusAttention
		}
	}
	return models.StatusHealthy
}

// RiskLevel derives a hive's risk from its alerts: the highest severity
// present, or none when the hive has no alerts.
func RiskLevel(alerts []models.Alert, hiveID string) models.RiskLevel {
	best := 0
	for _, a := range alerts {
		if a.Hive.ID != hiveID {
			continue
		}
		if r := a.Severity.Rank(); r > best {
			best = r
		}
	}
	switch best {
	case 3:
		return models.RiskHigh
	case 2:
		return models.RiskMedium
	case 1:
		return models.RiskLow
	default:
		return models.RiskNone
	}
}

// GroupByApiary partitions the merged hive list into one group per
// apiary, in order of first appearance, tagging each group with its
// provenance: demo, local or mixed.
func GroupByApiary(hives []models.Hive) []models.ApiaryGroup {
	index := make(map[string]int, len(hives))
	groups := make([]models.ApiaryGroup, 0)
	for _, h := range hives {
		i, seen := index[h.ApiaryID]
		if !seen {
			i = len(groups)
			index[h.ApiaryID] = i
			groups = append(groups, models.ApiaryGroup{
				ApiaryID: h.ApiaryID,
				Source:   h.Source,
			})
		}
		g := &groups[i]
		g.Hives = append(g.Hives, h)
		if g.Source != h.Source {
			g.Source = models.SourceMixed
		}
	}
	return groups
}
