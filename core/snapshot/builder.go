package snapshot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"ornithe-meta/core/catalog"
	"ornithe-meta/core/compat"
	"ornithe-meta/core/reconcile"
	"ornithe-meta/core/version"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	ornitheGroup = "net.ornithemc"
	oslGroup     = "net.ornithemc.osl"

	intermediaryArtifact = "calamus-intermediary"
	featherArtifact      = "feather"
	oslArtifact          = "osl"
	ravenArtifact        = "raven"
	sparrowArtifact      = "sparrow"
	nestsArtifact        = "nests"
	installerArtifact    = "ornithe-installer"
)

// Fetcher reads raw version data from Maven repositories.
type Fetcher interface {
	catalog.JSONFetcher
	FetchVersions(ctx context.Context, repo, group, artifact string, required bool) ([]string, error)
	FetchDependencies(ctx context.Context, repo, group, artifact, version string, filter func(string) bool) ([]string, error)
	ListDirectories(ctx context.Context, detailsURL string) ([]string, error)
}

// CatalogSource loads game catalogs.
type CatalogSource interface {
	Catalog(ctx context.Context, generation int) (*catalog.Catalog, error)
}

// OverrideSource reads operator overrides.
type OverrideSource interface {
	Exclusions(group, artifact string) ([]string, bool, error)
	LibraryUpgrades() ([]compat.LibraryOverride, error)
}

// Builder produces snapshots.
type Builder struct {
	cfg        Config
	fetcher    Fetcher
	catalogs   CatalogSource
	overrides  OverrideSource
	reconciler *reconcile.Reconciler
	logger     *zap.Logger
	now        func() time.Time
}

// NewBuilder creates a builder.
func NewBuilder(cfg Config, fetcher Fetcher, catalogs CatalogSource, overrides OverrideSource, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		cfg:        cfg,
		fetcher:    fetcher,
		catalogs:   catalogs,
		overrides:  overrides,
		reconciler: reconcile.New(logger),
		logger:     logger,
		now:        time.Now,
	}
}

type rawGeneration struct {
	catalog      *catalog.Catalog
	intermediary []string
	feather      []string
	osl          []string
	modules      []string

	oslDependencies map[string][]string
	oslModules      map[string][]string
}

type rawSet struct {
	gens      map[int]*rawGeneration
	fabric    []string
	quilt     []string
	raven     []string
	sparrow   []string
	nests     []string
	installer []string
	libraries []compat.LibraryOverride
}

// Build fetches, reconciles and validates a complete snapshot.
func (b *Builder) Build(ctx context.Context) (*Snapshot, error) {
	start := b.now()
	if b.cfg.LatestGeneration < 1 {
		return nil, fmt.Errorf("invalid latest generation %d", b.cfg.LatestGeneration)
	}

	raw, err := b.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := b.fetchOSL(ctx, raw); err != nil {
		return nil, err
	}

	snap, err := b.assemble(ctx, raw)
	if err != nil {
		return nil, err
	}
	snap.builtAt = b.now()
	snap.took = snap.builtAt.Sub(start)

	b.logger.Info("Snapshot built",
		zap.Int("latest_generation", snap.bounds.Latest),
		zap.Int("stable_generation", snap.bounds.Stable),
		zap.Duration("took", snap.took),
	)
	return snap, nil
}

// fetchAll runs every independent fetch concurrently.
func (b *Builder) fetchAll(ctx context.Context) (*rawSet, error) {
	raw := &rawSet{gens: make(map[int]*rawGeneration, b.cfg.LatestGeneration)}
	for gen := 1; gen <= b.cfg.LatestGeneration; gen++ {
		raw.gens[gen] = &rawGeneration{}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Workers())

	repo := b.cfg.OrnitheMavenURL
	versions := func(dst *[]string, repo, group, artifact string, required bool) {
		g.Go(func() error {
			v, err := b.fetcher.FetchVersions(gctx, repo, group, artifact, required)
			if err != nil {
				return fmt.Errorf("fetching %s:%s: %w", group, artifact, err)
			}
			*dst = v
			return nil
		})
	}

	for gen := 1; gen <= b.cfg.LatestGeneration; gen++ {
		gen, rg := gen, raw.gens[gen]
		required := gen <= b.cfg.StableGeneration

		g.Go(func() error {
			cat, err := b.catalogs.Catalog(gctx, gen)
			if err != nil {
				if required {
					return err
				}
				b.logger.Warn("Game catalog unavailable, serving generation without game versions",
					zap.Int("generation", gen), zap.Error(err))
				cat = catalog.Empty(gen)
			}
			rg.catalog = cat
			return nil
		})
		versions(&rg.intermediary, repo, ornitheGroup, version.ForGeneration(intermediaryArtifact, gen), required)
		versions(&rg.feather, repo, ornitheGroup, version.ForGeneration(featherArtifact, gen), required)
		versions(&rg.osl, repo, ornitheGroup, version.ForGeneration(oslArtifact, gen), required)
		g.Go(func() error {
			u := version.ForGeneration(strings.TrimSuffix(b.cfg.OrnitheDetailsURL, "/")+"/net/ornithemc/osl", gen)
			modules, err := b.fetcher.ListDirectories(gctx, u)
			if err != nil {
				b.logger.Warn("OSL module listing unavailable", zap.Int("generation", gen), zap.Error(err))
				modules = []string{}
			}
			rg.modules = modules
			return nil
		})
	}

	versions(&raw.fabric, b.cfg.FabricMavenURL, version.LoaderFabric.Group(), version.LoaderFabric.Artifact(), true)
	versions(&raw.quilt, b.cfg.QuiltMavenURL, version.LoaderQuilt.Group(), version.LoaderQuilt.Artifact(), true)
	versions(&raw.raven, repo, ornitheGroup, ravenArtifact, true)
	versions(&raw.sparrow, repo, ornitheGroup, sparrowArtifact, true)
	versions(&raw.nests, repo, ornitheGroup, nestsArtifact, true)
	versions(&raw.installer, repo, ornitheGroup, installerArtifact, true)

	g.Go(func() error {
		libs, err := b.overrides.LibraryUpgrades()
		if err != nil {
			return fmt.Errorf("loading library upgrades: %w", err)
		}
		raw.libraries = libs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return raw, nil
}

// fetchOSL resolves OSL dependencies and module versions, which depend on
// the lists fetched by fetchAll.
func (b *Builder) fetchOSL(ctx context.Context, raw *rawSet) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Workers())

	var mu sync.Mutex
	repo := b.cfg.OrnitheMavenURL

	for gen := 1; gen <= b.cfg.LatestGeneration; gen++ {
		gen, rg := gen, raw.gens[gen]
		rg.oslDependencies = make(map[string][]string, len(rg.osl))
		rg.oslModules = make(map[string][]string, len(rg.modules))
		required := gen <= b.cfg.StableGeneration
		artifact := version.ForGeneration(oslArtifact, gen)

		for _, coord := range rg.osl {
			c, err := version.ParseCoordinate(coord)
			if err != nil {
				continue
			}
			g.Go(func() error {
				deps, err := b.fetcher.FetchDependencies(gctx, repo, ornitheGroup, artifact, c.Version, func(dep string) bool {
					return strings.HasPrefix(dep, oslGroup)
				})
				if err != nil {
					return fmt.Errorf("fetching dependencies of %s: %w", coord, err)
				}
				mu.Lock()
				rg.oslDependencies[c.Version] = deps
				mu.Unlock()
				return nil
			})
		}

		group := version.ForGeneration(oslGroup, gen)
		for _, module := range rg.modules {
			g.Go(func() error {
				v, err := b.fetcher.FetchVersions(gctx, repo, group, module, required)
				if err != nil {
					return fmt.Errorf("fetching %s:%s: %w", group, module, err)
				}
				mu.Lock()
				rg.oslModules[module] = v
				mu.Unlock()
				return nil
			})
		}
	}

	return g.Wait()
}

// assemble reconciles raw data into a snapshot. Generations are processed in
// ascending order.
func (b *Builder) assemble(ctx context.Context, raw *rawSet) (*Snapshot, error) {
	snap := &Snapshot{
		generations: make(map[int]*generation, len(raw.gens)),
		bounds:      Generations{Latest: b.cfg.LatestGeneration, Stable: b.cfg.StableGeneration},
	}
	catalogs := make([]*catalog.Catalog, 0, len(raw.gens))
	normalizers := make(map[int]compat.Normalizer, len(raw.gens))
	repo := b.cfg.OrnitheMavenURL

	fabric := b.parse(version.KindBuild, raw.fabric, "")
	quilt := b.parse(version.KindBuild, raw.quilt, "")

	for gen := 1; gen <= b.cfg.LatestGeneration; gen++ {
		rg := raw.gens[gen]
		required := gen <= b.cfg.StableGeneration
		g := &generation{
			catalog:         rg.catalog,
			normalizer:      catalog.NewNormalizer(rg.catalog, b.fetcher),
			oslDependencies: make(map[string][]version.Version, len(rg.oslDependencies)),
			oslModules:      make(map[string][]version.Version, len(rg.oslModules)),
			loaders:         make(map[version.LoaderType][]version.Version, 2),
		}

		name := version.ForGeneration(intermediaryArtifact, gen)
		policy, err := b.policy(b.cfg.IntermediaryStability, reconcile.CatalogDriven(), ornitheGroup, name)
		if err != nil {
			return nil, err
		}
		g.intermediary, err = b.reconciler.Reconcile(reconcile.Family{
			Source: name, Generation: gen, Required: required, Policy: policy,
		}, b.parse(version.KindPlain, rg.intermediary, ""), rg.catalog)
		if err != nil {
			return nil, err
		}
		g.game = reconcile.DeriveGameVersions(g.intermediary, rg.catalog)

		name = version.ForGeneration(featherArtifact, gen)
		policy, err = b.policy(b.cfg.FeatherStability, reconcile.CatalogDriven(), ornitheGroup, name)
		if err != nil {
			return nil, err
		}
		g.feather, err = b.reconciler.Reconcile(reconcile.Family{
			Source: name, Generation: gen, Required: required, Policy: policy,
		}, b.parse(version.KindBuildGame, rg.feather, ""), rg.catalog)
		if err != nil {
			return nil, err
		}

		if g.osl, err = b.marked(b.cfg.OSLStability, ornitheGroup, version.ForGeneration(oslArtifact, gen), b.parse(version.KindPlain, rg.osl, "")); err != nil {
			return nil, err
		}
		for v, deps := range rg.oslDependencies {
			g.oslDependencies[v] = b.parse(version.KindPlain, deps, "")
		}
		group := version.ForGeneration(oslGroup, gen)
		for module, coords := range rg.oslModules {
			if g.oslModules[module], err = b.marked(b.cfg.OSLStability, group, module, b.parse(version.KindPlain, coords, "")); err != nil {
				return nil, err
			}
		}

		for lt, entries := range map[version.LoaderType][]version.Version{version.LoaderFabric: fabric, version.LoaderQuilt: quilt} {
			if g.loaders[lt], err = b.marked(b.cfg.LoaderStability, lt.Group(), lt.Artifact(), reconcile.FilterLoaders(gen, lt, entries)); err != nil {
				return nil, err
			}
		}

		snap.generations[gen] = g
		catalogs = append(catalogs, rg.catalog)
		normalizers[gen] = g.normalizer
	}

	snap.raven = b.reconciler.ReconcileAcross(ravenArtifact, b.parse(version.KindBuildGame, raw.raven, ""), catalogs)
	snap.sparrow = b.reconciler.ReconcileAcross(sparrowArtifact, b.parse(version.KindBuildGame, raw.sparrow, ""), catalogs)
	snap.nests = b.reconciler.ReconcileAcross(nestsArtifact, b.parse(version.KindBuildGame, raw.nests, ""), catalogs)

	var err error
	if snap.installer, err = b.marked(b.cfg.InstallerStability, ornitheGroup, installerArtifact, b.parse(version.KindURL, raw.installer, repo)); err != nil {
		return nil, err
	}

	if err := compat.ValidateAll(ctx, raw.libraries, b.cfg.LatestGeneration, normalizers); err != nil {
		return nil, err
	}
	snap.resolver = compat.NewResolver(raw.libraries, normalizers)

	return snap, nil
}

// policy resolves the stability policy of one artifact.
func (b *Builder) policy(mode string, fallback reconcile.Policy, group, artifact string) (reconcile.Policy, error) {
	exclusions, ok, err := b.overrides.Exclusions(group, artifact)
	if err != nil {
		return reconcile.Policy{}, err
	}
	p, err := reconcile.ResolvePolicy(mode, fallback, exclusions, ok)
	if err != nil {
		return reconcile.Policy{}, fmt.Errorf("%s:%s: %w", group, artifact, err)
	}
	return p, nil
}

// marked applies the artifact's first-unmarked policy to a collection with
// no catalog.
func (b *Builder) marked(mode, group, artifact string, entries []version.Version) ([]version.Version, error) {
	p, err := b.policy(mode, reconcile.FirstUnmarked(nil), group, artifact)
	if err != nil {
		return nil, err
	}
	reconcile.MarkStable(entries, p, nil)
	return entries, nil
}

func (b *Builder) parse(kind version.Kind, coords []string, repo string) []version.Version {
	out := make([]version.Version, 0, len(coords))
	for _, c := range coords {
		v, err := version.New(kind, c, repo)
		if err != nil {
			b.logger.Warn("Skipping malformed version", zap.String("maven", c), zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out
}
