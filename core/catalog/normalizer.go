package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"ornithe-meta/core/maven"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/singleflight"
)

// ErrUnknownVersion is returned when a game version has no normalized form.
var ErrUnknownVersion = errors.New("unknown game version")

type details struct {
	ID                string `json:"id"`
	NormalizedVersion string `json:"normalizedVersion"`
}

type normalized struct {
	version *semver.Version
	err     error
}

// Normalizer maps game version ids of one catalog to semantic versions.
// Successful and definitely-unknown lookups are memoized; transient fetch
// failures are not, so a later lookup retries them.
type Normalizer struct {
	catalog *Catalog
	fetcher JSONFetcher

	cache sync.Map
	sf    singleflight.Group
}

// NewNormalizer creates a normalizer backed by the catalog's details links.
func NewNormalizer(c *Catalog, fetcher JSONFetcher) *Normalizer {
	return &Normalizer{catalog: c, fetcher: fetcher}
}

// Preload seeds the memo with a known value.
func (n *Normalizer) Preload(id string, v *semver.Version) {
	n.cache.Store(id, normalized{version: v})
}

// Normalize resolves id. Errors wrap ErrUnknownVersion when the id is not in
// the catalog or its details document is missing or malformed.
func (n *Normalizer) Normalize(ctx context.Context, id string) (*semver.Version, error) {
	if cached, ok := n.cache.Load(id); ok {
		r := cached.(normalized)
		return r.version, r.err
	}

	res, err, _ := n.sf.Do(id, func() (any, error) {
		if cached, ok := n.cache.Load(id); ok {
			r := cached.(normalized)
			return r.version, r.err
		}

		v, err, final := n.resolve(ctx, id)
		if final {
			n.cache.Store(id, normalized{version: v, err: err})
		}
		return v, err
	})
	if err != nil {
		return nil, err
	}
	return res.(*semver.Version), nil
}

func (n *Normalizer) resolve(ctx context.Context, id string) (*semver.Version, error, bool) {
	entry, ok := n.catalog.Entry(id)
	if !ok || entry.Details == "" {
		return nil, fmt.Errorf("%w: %q in gen%d", ErrUnknownVersion, id, n.catalog.Generation()), true
	}

	var d details
	if err := n.fetcher.GetJSON(ctx, entry.Details, &d); err != nil {
		if errors.Is(err, maven.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownVersion, id, err), true
		}
		return nil, fmt.Errorf("normalizing %q: %w", id, err), false
	}

	v, err := semver.NewVersion(d.NormalizedVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %q has invalid normalized version %q: %v", ErrUnknownVersion, id, d.NormalizedVersion, err), true
	}
	return v, nil, true
}
