package compat

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultLibraryURL is the repository libraries are served from unless an
// override names another one.
const DefaultLibraryURL = "https://libraries.minecraft.net/"

// Library is a profile library entry.
type Library struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LibraryOverride injects a library for a bounded set of generations and game
// versions. All bounds are inclusive; unset bounds are open.
type LibraryOverride struct {
	Name           string `json:"name"`
	URL            string `json:"url,omitempty"`
	MinGeneration  *int   `json:"minIntermediaryGeneration,omitempty"`
	MaxGeneration  *int   `json:"maxIntermediaryGeneration,omitempty"`
	MinGameVersion string `json:"minGameVersion,omitempty"`
	MaxGameVersion string `json:"maxGameVersion,omitempty"`
}

// Library returns the profile entry for the override.
func (o LibraryOverride) Library() Library {
	url := o.URL
	if url == "" {
		url = DefaultLibraryURL
	}
	return Library{Name: o.Name, URL: url}
}

// Applies reports whether the override applies to gameVersion of generation.
// Any failed normalization makes the override not applicable.
func (o LibraryOverride) Applies(ctx context.Context, generation int, gameVersion string, n Normalizer) bool {
	if o.MinGeneration != nil && generation < *o.MinGeneration {
		return false
	}
	if o.MaxGeneration != nil && generation > *o.MaxGeneration {
		return false
	}
	if o.MinGameVersion == "" && o.MaxGameVersion == "" {
		return true
	}
	if n == nil {
		return false
	}

	v, err := n.Normalize(ctx, gameVersion)
	if err != nil {
		return false
	}
	min, max, err := o.bounds(ctx, n)
	if err != nil {
		return false
	}
	return within(v, min, max)
}

func (o LibraryOverride) bounds(ctx context.Context, n Normalizer) (min, max *semver.Version, err error) {
	if o.MinGameVersion != "" {
		if min, err = n.Normalize(ctx, o.MinGameVersion); err != nil {
			return nil, nil, fmt.Errorf("unknown minimum game version %q: %w", o.MinGameVersion, err)
		}
	}
	if o.MaxGameVersion != "" {
		if max, err = n.Normalize(ctx, o.MaxGameVersion); err != nil {
			return nil, nil, fmt.Errorf("unknown maximum game version %q: %w", o.MaxGameVersion, err)
		}
	}
	return min, max, nil
}

// ValidationError is a library override that can never be evaluated.
type ValidationError struct {
	Name       string
	Generation int
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.Generation > 0 {
		return fmt.Sprintf("invalid library override %s (gen%d): %s", e.Name, e.Generation, e.Reason)
	}
	return fmt.Sprintf("invalid library override %s: %s", e.Name, e.Reason)
}

// Validate checks the override's notation and bounds. Version bounds are
// resolved for every generation between the generation bounds, defaulting to
// 1 and latest.
func (o LibraryOverride) Validate(ctx context.Context, latest int, normalizers map[int]Normalizer) error {
	parts := strings.Split(o.Name, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return &ValidationError{Name: o.Name, Reason: "invalid maven notation"}
	}

	minGen, maxGen := 1, latest
	if o.MinGeneration != nil {
		minGen = *o.MinGeneration
	}
	if o.MaxGeneration != nil {
		maxGen = *o.MaxGeneration
	}
	if o.MinGeneration != nil && o.MaxGeneration != nil && minGen > maxGen {
		return &ValidationError{Name: o.Name, Reason: fmt.Sprintf("generation bounds %d > %d", minGen, maxGen)}
	}

	if o.MinGameVersion == "" && o.MaxGameVersion == "" {
		return nil
	}
	if maxGen > latest {
		maxGen = latest
	}

	for gen := minGen; gen <= maxGen; gen++ {
		n, ok := normalizers[gen]
		if !ok || n == nil {
			return &ValidationError{Name: o.Name, Generation: gen, Reason: "no game catalog"}
		}
		min, max, err := o.bounds(ctx, n)
		if err != nil {
			return &ValidationError{Name: o.Name, Generation: gen, Reason: err.Error()}
		}
		if min != nil && max != nil && min.GreaterThan(max) {
			return &ValidationError{Name: o.Name, Generation: gen, Reason: fmt.Sprintf("game version bounds %s > %s", o.MinGameVersion, o.MaxGameVersion)}
		}
	}
	return nil
}

// ValidateAll validates every override, stopping at the first failure.
func ValidateAll(ctx context.Context, overrides []LibraryOverride, latest int, normalizers map[int]Normalizer) error {
	for _, o := range overrides {
		if err := o.Validate(ctx, latest, normalizers); err != nil {
			return err
		}
	}
	return nil
}
