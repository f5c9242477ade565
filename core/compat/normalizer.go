package compat

import (
	"context"

	"github.com/Masterminds/semver/v3"
)

// Normalizer resolves game version ids to semantic versions.
type Normalizer interface {
	Normalize(ctx context.Context, id string) (*semver.Version, error)
}

// within reports min <= v <= max, treating nil bounds as unbounded.
func within(v, min, max *semver.Version) bool {
	if min != nil && v.LessThan(min) {
		return false
	}
	if max != nil && v.GreaterThan(max) {
		return false
	}
	return true
}
