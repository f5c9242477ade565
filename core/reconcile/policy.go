package reconcile

import (
	"fmt"
	"strings"

	"ornithe-meta/core/catalog"
	"ornithe-meta/core/version"
)

type policyKind int

const (
	catalogDriven policyKind = iota
	firstUnmarked
)

// Policy decides which entry of a collection is stable.
type Policy struct {
	kind       policyKind
	exclusions map[string]struct{}
}

// CatalogDriven marks the newest entry targeting a release game version.
// When no entry targets a release, MarkStable falls back to the newest entry,
// which may then be a snapshot or pre-release.
func CatalogDriven() Policy {
	return Policy{kind: catalogDriven}
}

// FirstUnmarked marks the newest public entry whose version is not excluded.
func FirstUnmarked(exclusions []string) Policy {
	set := make(map[string]struct{}, len(exclusions))
	for _, e := range exclusions {
		set[e] = struct{}{}
	}
	return Policy{kind: firstUnmarked, exclusions: set}
}

// IsCatalogDriven reports the policy kind.
func (p Policy) IsCatalogDriven() bool {
	return p.kind == catalogDriven
}

// Excludes reports whether v is listed in the exclusion set.
func (p Policy) Excludes(v string) bool {
	_, ok := p.exclusions[v]
	return ok
}

func (p Policy) String() string {
	if p.kind == catalogDriven {
		return "catalog"
	}
	return fmt.Sprintf("first-unmarked(%d exclusions)", len(p.exclusions))
}

func (p Policy) selects(v version.Version, cat *catalog.Catalog) bool {
	switch p.kind {
	case catalogDriven:
		return cat != nil && cat.IsStable(v.GameVersionID())
	default:
		return v.IsPublic() && !p.Excludes(v.Version)
	}
}

// Policy modes accepted in configuration.
const (
	ModeAuto    = "auto"
	ModeCatalog = "catalog"
	ModeFirst   = "first"
)

// ResolvePolicy picks a family's policy from its configured mode. In auto
// mode an exclusion file switches the family to FirstUnmarked, otherwise
// fallback applies.
func ResolvePolicy(mode string, fallback Policy, exclusions []string, hasExclusions bool) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto:
		if hasExclusions {
			return FirstUnmarked(exclusions), nil
		}
		return fallback, nil
	case ModeCatalog:
		return CatalogDriven(), nil
	case ModeFirst:
		return FirstUnmarked(exclusions), nil
	default:
		return Policy{}, fmt.Errorf("unknown stability mode %q", mode)
	}
}

// MarkStable clears every stability flag and marks the single entry chosen by
// policy. cat may be nil for families not tied to a catalog.
func MarkStable(entries []version.Version, policy Policy, cat *catalog.Catalog) {
	for i := range entries {
		entries[i].Stable = false
	}
	if len(entries) == 0 {
		return
	}

	for i := range entries {
		if policy.selects(entries[i], cat) {
			entries[i].Stable = true
			return
		}
	}
	entries[0].Stable = true
}
