// FilePath: internal/fleet/merge.go
package fleet

import "github.com/honeyroute/honeyroute/internal/models"

// MergePolicy decides how demo entities and locally created entities are
// unioned into one fleet. Swapping the conflict strategy (for example to
// last-write-wins) is a matter of plugging in another implementation.
type MergePolicy interface {
	MergeApiaries(demo, local []models.Apiary) []models.Apiary
	MergeHives(demo, local []models.Hive) []models.Hive
}

// DemoPriorityMerge is the active policy: demo entities are immutable
// and authoritative, locals are additive only. Output is all demo
// entities in their original order followed by the local entities whose
// id was not already taken, in their original order. A local entity can
// never shadow or mutate a demo entity's fields. O(n+m).
type DemoPriorityMerge struct{}

func (DemoPriorityMerge) MergeApiaries(demo, local []models.Apiary) []models.Apiary {
	seen := make(map[string]struct{}, len(demo))
	out := make([]models.Apiary, 0, len(demo)+len(local))
	for _, a := range demo {
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	for _, a := range local {
		if _, taken := seen[a.ID]; taken {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	return out
}

func (DemoPriorityMerge) MergeHives(demo, local []models.Hive) []models.Hive {
	seen := make(map[string]struct{}, len(demo))
	out := make([]models.Hive, 0, len(demo)+len(local))
	for _, h := range demo {
		seen[h.ID] = struct{}{}
		out = append(out, h)
	}
	for _, h := range local {
		if _, taken := seen[h.ID]; taken {
			continue
		}
		seen[h.ID] = struct{}{}
		out = append(out, h)
	}
	return out
}
