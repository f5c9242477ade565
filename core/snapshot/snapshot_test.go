package snapshot_test

import (
	"context"
	"errors"
	"testing"

	"ornithe-meta/core/catalog"
	"ornithe-meta/core/compat"
	"ornithe-meta/core/maven"
	"ornithe-meta/core/reconcile"
	"ornithe-meta/core/snapshot"
	"ornithe-meta/core/snapshot/snapshottest"
	"ornithe-meta/core/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func versions(entries []version.Version) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Version
	}
	return out
}

func stable(entries []version.Version) []string {
	var out []string
	for _, e := range entries {
		if e.Stable {
			out = append(out, e.Version)
		}
	}
	return out
}

func TestBuilder_Build(t *testing.T) {
	f := snapshottest.NewFixture()
	snap := f.MustBuild(t)
	ctx := context.Background()

	assert.Equal(t, snapshot.Generations{Latest: 2, Stable: 1}, snap.Generations())
	assert.True(t, snap.HasGeneration(1))
	assert.True(t, snap.HasGeneration(2))
	assert.False(t, snap.HasGeneration(3))
	assert.False(t, snap.BuiltAt().IsZero())

	t.Run("Intermediary", func(t *testing.T) {
		got := snap.Intermediary(1)
		assert.Equal(t, []string{"1.2", "12w08a", "1.1", "1.0"}, versions(got))
		assert.Equal(t, []string{"1.2"}, stable(got))

		got = snap.Intermediary(2)
		assert.Equal(t, []string{"1.3", "1.2"}, versions(got))
		assert.Equal(t, []string{"1.3"}, stable(got))
	})

	t.Run("Game", func(t *testing.T) {
		assert.Equal(t, []version.GameVersion{
			{Version: "1.2", Stable: true},
			{Version: "12w08a", Stable: false},
			{Version: "1.1", Stable: true},
			{Version: "1.0", Stable: true},
		}, snap.Game(1))
		assert.Empty(t, snap.Game(7))
	})

	t.Run("Feather", func(t *testing.T) {
		got := snap.Feather(1)
		assert.Equal(t, []string{"1.2+build.3", "1.2+build.2", "1.0+build.1"}, versions(got))
		assert.Equal(t, []string{"1.2+build.3"}, stable(got))
		assert.Equal(t, "1.2", got[0].GameVersion)
		assert.Equal(t, 3, got[0].Build)

		assert.Equal(t, []string{"1.3+build.1"}, versions(snap.Feather(2)))
	})

	t.Run("OSL", func(t *testing.T) {
		got := snap.OSL(1)
		assert.Equal(t, []string{"0.2.0", "0.1.0"}, versions(got))
		assert.Equal(t, []string{"0.2.0"}, stable(got))
		assert.Empty(t, snap.OSL(2))

		deps, ok := snap.OSLDependencies(1, "0.2.0")
		require.True(t, ok)
		assert.Equal(t, []string{"0.4.0+mc1.0-mc1.2"}, versions(deps))
		_, ok = snap.OSLDependencies(1, "9.9.9")
		assert.False(t, ok)

		assert.Equal(t, []string{"entrypoints"}, snap.OSLModules(1))
		assert.Empty(t, snap.OSLModules(2))

		module, ok := snap.OSLModule(1, "entrypoints")
		require.True(t, ok)
		assert.Equal(t, []string{"0.4.0+mc1.0-mc1.2"}, stable(module))
	})

	t.Run("ModuleVersions", func(t *testing.T) {
		got, ok := snap.ModuleVersions(ctx, 1, "entrypoints", "1.1", "")
		require.True(t, ok)
		assert.Equal(t, []string{"0.4.0+mc1.0-mc1.2", "0.3.0+mc1.0#1.1", "0.2.0"}, versions(got))

		got, _ = snap.ModuleVersions(ctx, 1, "entrypoints", "1.2", "")
		assert.Equal(t, []string{"0.4.0+mc1.0-mc1.2", "0.2.0"}, versions(got))

		got, _ = snap.ModuleVersions(ctx, 1, "entrypoints", "12w08a", "")
		assert.Equal(t, []string{"0.4.0+mc1.0-mc1.2", "0.2.0"}, versions(got))

		got, _ = snap.ModuleVersions(ctx, 1, "entrypoints", "1.1", "0.3")
		assert.Equal(t, []string{"0.3.0+mc1.0#1.1"}, versions(got))

		_, ok = snap.ModuleVersions(ctx, 1, "missing", "1.1", "")
		assert.False(t, ok)
	})

	t.Run("Loaders", func(t *testing.T) {
		assert.Equal(t, []string{"0.18.0", "0.17.2", "0.16.0"}, versions(snap.Loaders(1, version.LoaderFabric)))
		assert.Equal(t, []string{"0.18.0"}, versions(snap.Loaders(2, version.LoaderFabric)))

		quilt := snap.AllLoaders(1, version.LoaderQuilt)
		assert.Equal(t, []string{"0.30.0-beta.1", "0.29.1", "0.28.0"}, versions(quilt))
		assert.Equal(t, []string{"0.29.1"}, stable(quilt))
		assert.Equal(t, []string{"0.29.1", "0.28.0"}, versions(snap.Loaders(1, version.LoaderQuilt)))

		assert.Equal(t, []string{"0.30.0-beta.1"}, versions(snap.AllLoaders(2, version.LoaderQuilt)))
		assert.Empty(t, snap.Loaders(2, version.LoaderQuilt))
	})

	t.Run("CrossGeneration", func(t *testing.T) {
		raven := snap.Raven()
		assert.Equal(t, []string{"1.3+build.1", "1.0+build.2"}, versions(raven))
		assert.Equal(t, []string{"1.3+build.1", "1.0+build.2"}, stable(raven))
		assert.Equal(t, []string{"1.1+build.1"}, versions(snap.Sparrow()))
		assert.Empty(t, snap.Nests())
	})

	t.Run("Installer", func(t *testing.T) {
		got := snap.Installer()
		assert.Equal(t, []string{"1.0.0", "0.9.0"}, versions(got))
		assert.Equal(t, []string{"1.0.0"}, stable(got))
		assert.Equal(t, "https://maven.test/releases/net/ornithemc/ornithe-installer/1.0.0/ornithe-installer-1.0.0.jar", got[0].URL)
	})

	t.Run("Libraries", func(t *testing.T) {
		assert.Len(t, snap.LibraryOverrides(), 1)
		assert.Equal(t, []compat.Library{{Name: "org.lwjgl.lwjgl:lwjgl:2.9.4", URL: compat.DefaultLibraryURL}}, snap.Libraries(ctx, 1, "1.0"))
		assert.Empty(t, snap.Libraries(ctx, 1, "1.2"))
		assert.Empty(t, snap.Libraries(ctx, 2, "1.2"))
	})

	t.Run("LoaderInfo", func(t *testing.T) {
		info, err := snap.LoaderInfo(1, version.LoaderFabric, "1.2", "0.18.0")
		require.NoError(t, err)
		assert.Equal(t, "0.18.0", info.Loader.Version)
		assert.Equal(t, "1.2", info.Intermediary.Version)
		assert.Equal(t, "fabric-loader-0.18.0-1.2-ornithe-gen1", info.ProfileName(1, "client"))

		info, err = snap.LoaderInfo(1, version.LoaderQuilt, "1.2", "0.30.0-beta.1")
		require.NoError(t, err)
		assert.False(t, info.Loader.IsPublic())

		_, err = snap.LoaderInfo(1, version.LoaderFabric, "1.2", "9.9")
		assert.ErrorIs(t, err, snapshot.ErrLoaderNotFound)
		assert.EqualError(t, err, "no loader version found for 1.2")

		_, err = snap.LoaderInfo(1, version.LoaderFabric, "9.9", "0.18.0")
		assert.ErrorIs(t, err, snapshot.ErrIntermediaryNotFound)

		assert.Len(t, snap.LoaderInfos(1, version.LoaderQuilt, "1.2"), 2)
		assert.Empty(t, snap.LoaderInfos(1, version.LoaderQuilt, "9.9"))
	})

	t.Run("Summary", func(t *testing.T) {
		s := snap.Summary()
		assert.Equal(t, 4, s.PerGen[1]["intermediary"])
		assert.Equal(t, 2, s.Raven)
		assert.Equal(t, 1, s.Libraries)
	})
}

func TestSnapshot_AccessorsReturnCopies(t *testing.T) {
	snap := snapshottest.NewFixture().MustBuild(t)

	got := snap.Intermediary(1)
	got[0].Version = "mutated"
	got[0].Stable = false
	assert.Equal(t, "1.2", snap.Intermediary(1)[0].Version)
	assert.True(t, snap.Intermediary(1)[0].Stable)

	game := snap.Game(1)
	game[0].Version = "mutated"
	assert.Equal(t, "1.2", snap.Game(1)[0].Version)

	raven := snap.Raven()
	raven[0] = version.Version{}
	assert.Equal(t, "1.3+build.1", snap.Raven()[0].Version)
}

func TestBuilder_Build_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyRequiredIntermediary", func(t *testing.T) {
		f := snapshottest.NewFixture()
		f.Fetcher.Versions["net.ornithemc:calamus-intermediary"] = []string{}

		_, err := f.Builder().Build(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, reconcile.ErrEmptyRequired)
		var fatal *reconcile.FatalError
		require.ErrorAs(t, err, &fatal)
		assert.Equal(t, 1, fatal.Generation)
	})

	t.Run("MissingRequiredFeather", func(t *testing.T) {
		f := snapshottest.NewFixture()
		delete(f.Fetcher.Versions, "net.ornithemc:feather")

		_, err := f.Builder().Build(ctx)
		assert.ErrorIs(t, err, maven.ErrNotFound)
	})

	t.Run("RequiredCatalog", func(t *testing.T) {
		f := snapshottest.NewFixture()
		f.Catalogs.Errs = map[int]error{1: errors.New("catalog down")}

		_, err := f.Builder().Build(ctx)
		assert.EqualError(t, err, "catalog down")
	})

	t.Run("OptionalCatalogDegrades", func(t *testing.T) {
		f := snapshottest.NewFixture()
		f.Catalogs.Errs = map[int]error{2: errors.New("catalog down")}

		snap, err := f.Builder().Build(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap.Intermediary(2))
		assert.Empty(t, snap.Game(2))
		assert.Equal(t, 0, snap.Catalog(2).Len())
		assert.Equal(t, []string{"1.0+build.2"}, versions(snap.Raven()))
	})

	t.Run("InvalidLibraryOverride", func(t *testing.T) {
		f := snapshottest.NewFixture()
		f.Overrides.Libraries = append(f.Overrides.Libraries, compat.LibraryOverride{Name: "a:b:1", MinGameVersion: "7.7"})

		_, err := f.Builder().Build(ctx)
		var ve *compat.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("UnknownStabilityMode", func(t *testing.T) {
		f := snapshottest.NewFixture()
		f.Config.OSLStability = "sometimes"

		_, err := f.Builder().Build(ctx)
		assert.Error(t, err)
	})

	t.Run("LoaderListRequired", func(t *testing.T) {
		f := snapshottest.NewFixture()
		f.Fetcher.Errs["net.fabricmc:fabric-loader"] = maven.ErrUpstreamDown

		_, err := f.Builder().Build(ctx)
		assert.ErrorIs(t, err, maven.ErrUpstreamDown)
	})

	t.Run("InvalidLatest", func(t *testing.T) {
		f := snapshottest.NewFixture()
		f.Config.LatestGeneration = 0

		_, err := f.Builder().Build(ctx)
		assert.Error(t, err)
	})
}

func TestBuilder_Build_Exclusions(t *testing.T) {
	f := snapshottest.NewFixture()
	f.Overrides.Exclude = map[string][]string{
		"net.ornithemc:calamus-intermediary": {"1.2"},
		"net.ornithemc:osl":                  {"0.2.0"},
		"net.fabricmc:fabric-loader":         {"0.18.0"},
	}

	snap := f.MustBuild(t)

	assert.Equal(t, []string{"12w08a"}, stable(snap.Intermediary(1)))
	assert.Equal(t, []string{"1.3"}, stable(snap.Intermediary(2)))
	assert.Equal(t, []string{"0.1.0"}, stable(snap.OSL(1)))
	assert.Equal(t, []string{"0.17.2"}, stable(snap.Loaders(1, version.LoaderFabric)))
	assert.Equal(t, []string{"0.18.0"}, stable(snap.Loaders(2, version.LoaderFabric)))
}

func TestBuilder_Build_ExplicitCatalogMode(t *testing.T) {
	f := snapshottest.NewFixture()
	f.Overrides.Exclude = map[string][]string{"net.ornithemc:calamus-intermediary": {"1.2"}}
	f.Config.IntermediaryStability = reconcile.ModeCatalog

	snap := f.MustBuild(t)
	assert.Equal(t, []string{"1.2"}, stable(snap.Intermediary(1)))
}

func TestStore(t *testing.T) {
	store := snapshot.NewStore()
	assert.Nil(t, store.Current())

	store.Publish(nil)
	assert.Nil(t, store.Current())

	snap := snapshottest.NewFixture().MustBuild(t)
	store.Publish(snap)
	assert.Same(t, snap, store.Current())
}

func TestSnapshot_Catalog(t *testing.T) {
	snap := snapshottest.NewFixture().MustBuild(t)
	assert.IsType(t, &catalog.Catalog{}, snap.Catalog(1))
	assert.Nil(t, snap.Catalog(9))
	assert.NotNil(t, snap.Normalizer(1))
	assert.Nil(t, snap.Normalizer(9))
}
