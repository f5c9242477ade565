package reconcile

import (
	"math"
	"sort"

	"ornithe-meta/core/catalog"
	"ornithe-meta/core/version"

	"go.uber.org/zap"
)

// Family describes one artifact collection being reconciled.
type Family struct {
	Source     string
	Generation int
	Required   bool
	Policy     Policy
}

// Reconciler orders and validates raw version lists.
type Reconciler struct {
	logger *zap.Logger
}

// New creates a reconciler logging removals to logger.
func New(logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{logger: logger}
}

// Reconcile sorts raw by catalog rank, removes entries unknown to the catalog
// and marks the stable entry. raw is never modified.
func (r *Reconciler) Reconcile(f Family, raw []version.Version, cat *catalog.Catalog) ([]version.Version, error) {
	if f.Required && len(raw) == 0 {
		return nil, &FatalError{Source: f.Source, Generation: f.Generation, Err: ErrEmptyRequired}
	}

	entries := version.Clone(raw)
	sort.SliceStable(entries, func(i, j int) bool {
		return rank(cat, entries[i]) < rank(cat, entries[j])
	})

	kept := entries[:0]
	for _, e := range entries {
		if !cat.Contains(e.GameVersionID()) {
			r.logger.Info("Removing version that does not match a game version",
				zap.String("source", f.Source),
				zap.Int("generation", f.Generation),
				zap.String("version", e.Version),
			)
			continue
		}
		kept = append(kept, e)
	}

	out := make([]version.Version, len(kept))
	copy(out, kept)
	MarkStable(out, f.Policy, cat)
	return out, nil
}

func rank(cat *catalog.Catalog, v version.Version) int {
	if i, ok := cat.IndexOf(v.GameVersionID()); ok {
		return i
	}
	return math.MaxInt
}

// DeriveGameVersions lists the distinct game versions of a reconciled
// intermediary collection in order, with the catalog's release flag.
func DeriveGameVersions(intermediary []version.Version, cat *catalog.Catalog) []version.GameVersion {
	seen := make(map[string]struct{}, len(intermediary))
	out := make([]version.GameVersion, 0, len(intermediary))
	for _, e := range intermediary {
		id := e.GameVersionID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, version.GameVersion{Version: id, Stable: cat.IsStable(id)})
	}
	return out
}
