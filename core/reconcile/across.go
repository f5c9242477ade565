package reconcile

import (
	"math"
	"sort"

	"ornithe-meta/core/catalog"
	"ornithe-meta/core/version"

	"go.uber.org/zap"
)

// ReconcileAcross reconciles a generation independent collection against all
// catalogs. Every surviving entry is stable.
func (r *Reconciler) ReconcileAcross(source string, raw []version.Version, catalogs []*catalog.Catalog) []version.Version {
	entries := version.Clone(raw)
	keys := make(map[string]int, len(entries))
	for _, e := range entries {
		id := e.GameVersionID()
		if _, ok := keys[id]; !ok {
			keys[id] = bestRank(catalogs, id)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return keys[entries[i].GameVersionID()] < keys[entries[j].GameVersionID()]
	})

	out := make([]version.Version, 0, len(entries))
	for _, e := range entries {
		if keys[e.GameVersionID()] == math.MaxInt {
			r.logger.Info("Removing version that does not match a game version in any generation",
				zap.String("source", source),
				zap.String("version", e.Version),
			)
			continue
		}
		e.Stable = true
		out = append(out, e)
	}
	return out
}

func bestRank(catalogs []*catalog.Catalog, id string) int {
	best := math.MaxInt
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		if i, ok := c.IndexOf(id); ok && i < best {
			best = i
		}
	}
	return best
}
