package compat

import (
	"context"
	"strings"

	"ornithe-meta/core/version"
)

// Resolver answers compatibility queries for one snapshot.
type Resolver struct {
	overrides   []LibraryOverride
	normalizers map[int]Normalizer
}

// NewResolver creates a resolver over validated overrides.
func NewResolver(overrides []LibraryOverride, normalizers map[int]Normalizer) *Resolver {
	o := make([]LibraryOverride, len(overrides))
	copy(o, overrides)
	n := make(map[int]Normalizer, len(normalizers))
	for k, v := range normalizers {
		n[k] = v
	}
	return &Resolver{overrides: o, normalizers: n}
}

// Overrides returns a copy of the configured overrides.
func (r *Resolver) Overrides() []LibraryOverride {
	out := make([]LibraryOverride, len(r.overrides))
	copy(out, r.overrides)
	return out
}

// Libraries lists the library overrides applying to gameVersion.
func (r *Resolver) Libraries(ctx context.Context, generation int, gameVersion string) []Library {
	n := r.normalizers[generation]
	out := make([]Library, 0)
	for _, o := range r.overrides {
		if o.Applies(ctx, generation, gameVersion, n) {
			out = append(out, o.Library())
		}
	}
	return out
}

// InRange reports whether gameVersion falls within r. Unknown versions are
// never in a bounded range.
func (r *Resolver) InRange(ctx context.Context, generation int, gameVersion string, rg Range) bool {
	if rg.Unbounded {
		return true
	}
	n := r.normalizers[generation]
	if n == nil {
		return false
	}

	v, err := n.Normalize(ctx, gameVersion)
	if err != nil {
		return false
	}
	min, err := n.Normalize(ctx, rg.Min)
	if err != nil {
		return false
	}
	max, err := n.Normalize(ctx, rg.Max)
	if err != nil {
		return false
	}
	return within(v, min, max)
}

// ModuleVersions filters module versions to those compatible with
// gameVersion, optionally restricted to versions starting with baseVersion.
func (r *Resolver) ModuleVersions(ctx context.Context, generation int, gameVersion, baseVersion string, versions []version.Version) []version.Version {
	out := make([]version.Version, 0, len(versions))
	for _, v := range versions {
		if baseVersion != "" && !strings.HasPrefix(v.Version, baseVersion) {
			continue
		}
		rg, ok := ParseRange(v.Version)
		if !ok {
			continue
		}
		if r.InRange(ctx, generation, gameVersion, rg) {
			out = append(out, v)
		}
	}
	return out
}
