package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"ornithe-meta/core/catalog"
	"ornithe-meta/core/compat"
	"ornithe-meta/core/version"
)

var (
	// ErrLoaderNotFound means no loader build has the requested version.
	ErrLoaderNotFound = errors.New("no loader version found")
	// ErrIntermediaryNotFound means no intermediary targets the game version.
	ErrIntermediaryNotFound = errors.New("no mappings version found")
)

// Generations reports the generation bounds of a snapshot.
type Generations struct {
	Latest int `json:"latest"`
	Stable int `json:"stable"`
}

// generation holds the collections of one generation.
type generation struct {
	catalog         *catalog.Catalog
	normalizer      compat.Normalizer
	game            []version.GameVersion
	intermediary    []version.Version
	feather         []version.Version
	osl             []version.Version
	oslDependencies map[string][]version.Version
	oslModules      map[string][]version.Version
	loaders         map[version.LoaderType][]version.Version
}

// Snapshot is an immutable, fully reconciled view of every collection.
// Accessors return copies; nothing reachable from a Snapshot changes after
// it has been built.
type Snapshot struct {
	generations map[int]*generation
	bounds      Generations
	raven       []version.Version
	sparrow     []version.Version
	nests       []version.Version
	installer   []version.Version
	resolver    *compat.Resolver
	builtAt     time.Time
	took        time.Duration
}

// LoaderInfo pairs a loader build with the intermediary of a game version.
type LoaderInfo struct {
	Type         version.LoaderType
	Loader       version.Version
	Intermediary version.Version
}

// Game returns the game version targeted by the pairing for side, stripping
// a matching side suffix.
func (i LoaderInfo) Game(side string) string {
	v := i.Intermediary.Version
	suffix := "-" + side
	if len(v) > len(suffix) && v[len(v)-len(suffix):] == suffix {
		return v[:len(v)-len(suffix)]
	}
	return v
}

// ProfileName is the launcher profile id of the pairing for side.
func (i LoaderInfo) ProfileName(generation int, side string) string {
	return fmt.Sprintf("%s-loader-%s-%s-ornithe-gen%d", i.Type, i.Loader.Version, i.Game(side), generation)
}

// Generations returns the latest and stable generation.
func (s *Snapshot) Generations() Generations {
	return s.bounds
}

// HasGeneration reports whether gen is served.
func (s *Snapshot) HasGeneration(gen int) bool {
	_, ok := s.generations[gen]
	return ok
}

// BuiltAt returns when the snapshot was completed.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

// BuildDuration returns how long the build took.
func (s *Snapshot) BuildDuration() time.Duration {
	return s.took
}

// Catalog returns the game catalog of gen.
func (s *Snapshot) Catalog(gen int) *catalog.Catalog {
	if g, ok := s.generations[gen]; ok {
		return g.catalog
	}
	return nil
}

// Game returns the game versions of gen.
func (s *Snapshot) Game(gen int) []version.GameVersion {
	g, ok := s.generations[gen]
	if !ok {
		return []version.GameVersion{}
	}
	out := make([]version.GameVersion, len(g.game))
	copy(out, g.game)
	return out
}

// Intermediary returns the intermediary versions of gen.
func (s *Snapshot) Intermediary(gen int) []version.Version {
	if g, ok := s.generations[gen]; ok {
		return version.Clone(g.intermediary)
	}
	return []version.Version{}
}

// Feather returns the feather builds of gen.
func (s *Snapshot) Feather(gen int) []version.Version {
	if g, ok := s.generations[gen]; ok {
		return version.Clone(g.feather)
	}
	return []version.Version{}
}

// OSL returns the OSL versions of gen.
func (s *Snapshot) OSL(gen int) []version.Version {
	if g, ok := s.generations[gen]; ok {
		return version.Clone(g.osl)
	}
	return []version.Version{}
}

// OSLDependencies returns the module dependencies of an OSL version.
func (s *Snapshot) OSLDependencies(gen int, oslVersion string) ([]version.Version, bool) {
	g, ok := s.generations[gen]
	if !ok {
		return nil, false
	}
	deps, ok := g.oslDependencies[oslVersion]
	if !ok {
		return nil, false
	}
	return version.Clone(deps), true
}

// OSLModule returns the versions of an OSL module.
func (s *Snapshot) OSLModule(gen int, module string) ([]version.Version, bool) {
	g, ok := s.generations[gen]
	if !ok {
		return nil, false
	}
	versions, ok := g.oslModules[module]
	if !ok {
		return nil, false
	}
	return version.Clone(versions), true
}

// OSLModules lists the module names of gen in lexical order.
func (s *Snapshot) OSLModules(gen int) []string {
	g, ok := s.generations[gen]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(g.oslModules))
	for name := range g.oslModules {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Loaders returns the public loader builds of gen.
func (s *Snapshot) Loaders(gen int, lt version.LoaderType) []version.Version {
	all := s.AllLoaders(gen, lt)
	out := all[:0]
	for _, v := range all {
		if v.IsPublic() {
			out = append(out, v)
		}
	}
	return out
}

// AllLoaders returns every loader build of gen, hidden ones included.
func (s *Snapshot) AllLoaders(gen int, lt version.LoaderType) []version.Version {
	if g, ok := s.generations[gen]; ok {
		return version.Clone(g.loaders[lt])
	}
	return []version.Version{}
}

// Raven returns the raven builds.
func (s *Snapshot) Raven() []version.Version { return version.Clone(s.raven) }

// Sparrow returns the sparrow builds.
func (s *Snapshot) Sparrow() []version.Version { return version.Clone(s.sparrow) }

// Nests returns the nests builds.
func (s *Snapshot) Nests() []version.Version { return version.Clone(s.nests) }

// Installer returns the installer builds.
func (s *Snapshot) Installer() []version.Version { return version.Clone(s.installer) }

// LibraryOverrides returns the validated library overrides.
func (s *Snapshot) LibraryOverrides() []compat.LibraryOverride {
	return s.resolver.Overrides()
}

// Libraries returns the library overrides applying to gameVersion of gen.
func (s *Snapshot) Libraries(ctx context.Context, gen int, gameVersion string) []compat.Library {
	return s.resolver.Libraries(ctx, gen, gameVersion)
}

// ModuleVersions returns the versions of an OSL module compatible with
// gameVersion. ok is false when the module does not exist.
func (s *Snapshot) ModuleVersions(ctx context.Context, gen int, module, gameVersion, baseVersion string) ([]version.Version, bool) {
	versions, ok := s.OSLModule(gen, module)
	if !ok {
		return nil, false
	}
	return s.resolver.ModuleVersions(ctx, gen, gameVersion, baseVersion, versions), true
}

// Normalizer returns the game version normalizer of gen.
func (s *Snapshot) Normalizer(gen int) compat.Normalizer {
	if g, ok := s.generations[gen]; ok {
		return g.normalizer
	}
	return nil
}

// LoaderInfo pairs loaderVersion with the intermediary of gameVersion. Hidden
// loader builds are found as well.
func (s *Snapshot) LoaderInfo(gen int, lt version.LoaderType, gameVersion, loaderVersion string) (LoaderInfo, error) {
	g, ok := s.generations[gen]
	if !ok {
		return LoaderInfo{}, fmt.Errorf("%w for %s", ErrLoaderNotFound, gameVersion)
	}

	var loader *version.Version
	for i := range g.loaders[lt] {
		if g.loaders[lt][i].Version == loaderVersion {
			loader = &g.loaders[lt][i]
			break
		}
	}
	if loader == nil {
		return LoaderInfo{}, fmt.Errorf("%w for %s", ErrLoaderNotFound, gameVersion)
	}

	mappings, ok := findIntermediary(g.intermediary, gameVersion)
	if !ok {
		return LoaderInfo{}, fmt.Errorf("%w for %s", ErrIntermediaryNotFound, gameVersion)
	}
	return LoaderInfo{Type: lt, Loader: *loader, Intermediary: mappings}, nil
}

// LoaderInfos pairs every public loader build with the intermediary of
// gameVersion. The result is empty when no intermediary matches.
func (s *Snapshot) LoaderInfos(gen int, lt version.LoaderType, gameVersion string) []LoaderInfo {
	g, ok := s.generations[gen]
	if !ok {
		return []LoaderInfo{}
	}
	mappings, ok := findIntermediary(g.intermediary, gameVersion)
	if !ok {
		return []LoaderInfo{}
	}

	out := make([]LoaderInfo, 0, len(g.loaders[lt]))
	for _, l := range g.loaders[lt] {
		if l.IsPublic() {
			out = append(out, LoaderInfo{Type: lt, Loader: l, Intermediary: mappings})
		}
	}
	return out
}

func findIntermediary(intermediary []version.Version, gameVersion string) (version.Version, bool) {
	for _, v := range intermediary {
		if v.Version == gameVersion {
			return v, true
		}
	}
	return version.Version{}, false
}

// Summary is a count of every collection, used for logging and the refresh
// command.
type Summary struct {
	Generations Generations            `json:"generations"`
	PerGen      map[int]map[string]int `json:"perGeneration"`
	Raven       int                    `json:"raven"`
	Sparrow     int                    `json:"sparrow"`
	Nests       int                    `json:"nests"`
	Installer   int                    `json:"installer"`
	Libraries   int                    `json:"libraries"`
	BuiltAt     time.Time              `json:"builtAt"`
	Took        string                 `json:"took"`
}

// Summary counts the snapshot's collections.
func (s *Snapshot) Summary() Summary {
	per := make(map[int]map[string]int, len(s.generations))
	for n, g := range s.generations {
		modules := 0
		for _, m := range g.oslModules {
			modules += len(m)
		}
		per[n] = map[string]int{
			"game":         len(g.game),
			"intermediary": len(g.intermediary),
			"feather":      len(g.feather),
			"osl":          len(g.osl),
			"oslModules":   modules,
			"fabricLoader": len(g.loaders[version.LoaderFabric]),
			"quiltLoader":  len(g.loaders[version.LoaderQuilt]),
		}
	}
	return Summary{
		Generations: s.bounds,
		PerGen:      per,
		Raven:       len(s.raven),
		Sparrow:     len(s.sparrow),
		Nests:       len(s.nests),
		Installer:   len(s.installer),
		Libraries:   len(s.resolver.Overrides()),
		BuiltAt:     s.builtAt,
		Took:        s.took.String(),
	}
}
