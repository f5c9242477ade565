package reconcile

import (
	"fmt"
	"math/rand"
	"testing"

	"ornithe-meta/core/catalog"
	"ornithe-meta/core/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testCatalog(gen int, ids ...string) *catalog.Catalog {
	// ids are given newest first; odd positions are snapshots
	entries := make([]catalog.Entry, 0, len(ids))
	for i, id := range ids {
		typ := "release"
		if i%2 == 1 {
			typ = "snapshot"
		}
		entries = append(entries, catalog.Entry{
			ID:          id,
			Type:        typ,
			ReleaseTime: fmt.Sprintf("2020-01-%02dT00:00:00+00:00", 28-i),
		})
	}
	return catalog.New(gen, entries)
}

func plain(versions ...string) []version.Version {
	out := make([]version.Version, 0, len(versions))
	for _, v := range versions {
		out = append(out, version.MustNew(version.KindPlain, "g:a:"+v))
	}
	return out
}

func versionsOf(entries []version.Version) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Version)
	}
	return out
}

func stableCount(entries []version.Version) int {
	n := 0
	for _, e := range entries {
		if e.Stable {
			n++
		}
	}
	return n
}

func TestReconcile_Scenario(t *testing.T) {
	cat := catalog.New(1, []catalog.Entry{
		{ID: "1.0", Type: "release", ReleaseTime: "2020-02-01T00:00:00+00:00"},
		{ID: "1.1", Type: "snapshot", ReleaseTime: "2020-01-01T00:00:00+00:00"},
	})
	raw := plain("1.1", "1.0", "9.9")

	got, err := New(zap.NewNop()).Reconcile(Family{Source: "intermediary", Generation: 1, Required: true, Policy: CatalogDriven()}, raw, cat)
	require.NoError(t, err)

	assert.Equal(t, []string{"1.0", "1.1"}, versionsOf(got))
	assert.True(t, got[0].Stable)
	assert.False(t, got[1].Stable)

	// input is untouched
	assert.Equal(t, []string{"1.1", "1.0", "9.9"}, versionsOf(raw))
	assert.Zero(t, stableCount(raw))
}

func TestReconcile_Properties(t *testing.T) {
	cat := testCatalog(2, "1.5", "1.5-pre1", "1.4", "1.4-pre2", "1.3", "1.2", "1.1", "1.0")
	pool := []string{"1.0", "1.1", "1.2", "1.3", "1.4", "1.4-pre2", "1.5-pre1", "1.5", "2.0", "b1.7", "1.3-client", "1.3-server"}
	r := New(zap.NewNop())
	rng := rand.New(rand.NewSource(7))

	policies := []Policy{CatalogDriven(), FirstUnmarked(nil), FirstUnmarked([]string{"1.5", "1.4"})}

	for i := 0; i < 200; i++ {
		n := rng.Intn(len(pool) + 1)
		picked := make([]string, 0, n)
		for j := 0; j < n; j++ {
			picked = append(picked, pool[rng.Intn(len(pool))])
		}
		policy := policies[i%len(policies)]

		got, err := r.Reconcile(Family{Source: "test", Generation: 2, Policy: policy}, plain(picked...), cat)
		require.NoError(t, err)

		last := -1
		for _, e := range got {
			idx, ok := cat.IndexOf(e.GameVersionID())
			require.True(t, ok, "kept %s which is not in the catalog", e.Version)
			assert.GreaterOrEqual(t, idx, last)
			last = idx
		}

		if len(got) == 0 {
			assert.Zero(t, stableCount(got))
		} else {
			assert.Equal(t, 1, stableCount(got), "input %v", picked)
		}
	}
}

func TestReconcile_StableSortKeepsFetchOrder(t *testing.T) {
	cat := testCatalog(1, "1.3", "1.2")
	raw := plain("1.2-server", "1.3", "1.2-client", "1.2")

	got, err := New(nil).Reconcile(Family{Source: "intermediary", Generation: 1, Policy: FirstUnmarked(nil)}, raw, cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.3", "1.2-server", "1.2-client", "1.2"}, versionsOf(got))
}

func TestReconcile_EmptyRequired(t *testing.T) {
	cat := testCatalog(2, "1.0")
	_, err := New(nil).Reconcile(Family{Source: "feather", Generation: 2, Required: true, Policy: CatalogDriven()}, nil, cat)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyRequired)
	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, "feather", fatal.Source)
	assert.Equal(t, 2, fatal.Generation)
	assert.Contains(t, err.Error(), "feather gen2")

	got, err := New(nil).Reconcile(Family{Source: "feather", Generation: 3, Policy: CatalogDriven()}, nil, cat)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReconcile_RequiredButAllDropped(t *testing.T) {
	// only an empty pre-filter list is fatal
	got, err := New(nil).Reconcile(Family{Source: "intermediary", Generation: 1, Required: true, Policy: CatalogDriven()}, plain("9.9"), testCatalog(1, "1.0"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReconcile_BuildGame(t *testing.T) {
	cat := testCatalog(1, "1.2", "1.1", "1.0")
	raw := []version.Version{
		version.MustNew(version.KindBuildGame, "net.ornithemc:feather:1.0+build.3"),
		version.MustNew(version.KindBuildGame, "net.ornithemc:feather:1.2+build.1"),
		version.MustNew(version.KindBuildGame, "net.ornithemc:feather:1.1+build.9"),
	}

	got, err := New(nil).Reconcile(Family{Source: "feather", Generation: 1, Policy: CatalogDriven()}, raw, cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.2+build.1", "1.1+build.9", "1.0+build.3"}, versionsOf(got))
	assert.True(t, got[0].Stable)
}

func TestMarkStable(t *testing.T) {
	cat := testCatalog(1, "1.2", "1.2-pre", "1.1")

	tests := []struct {
		name   string
		input  []string
		policy Policy
		want   int
	}{
		{"CatalogSkipsSnapshot", []string{"1.2-pre", "1.1"}, CatalogDriven(), 1},
		{"CatalogFirstRelease", []string{"1.2", "1.1"}, CatalogDriven(), 0},
		{"CatalogNoReleaseFallsBack", []string{"1.2-pre"}, CatalogDriven(), 0},
		{"FirstUnmarkedNoExclusions", []string{"1.2-pre", "1.1"}, FirstUnmarked(nil), 0},
		{"FirstUnmarkedSkipsExcluded", []string{"1.2", "1.2-pre", "1.1"}, FirstUnmarked([]string{"1.2", "1.2-pre"}), 2},
		{"FirstUnmarkedAllExcluded", []string{"1.2"}, FirstUnmarked([]string{"1.2"}), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := plain(tt.input...)
			for i := range entries {
				entries[i].Stable = true
			}
			MarkStable(entries, tt.policy, cat)
			assert.Equal(t, 1, stableCount(entries))
			assert.True(t, entries[tt.want].Stable)
		})
	}

	t.Run("Empty", func(t *testing.T) {
		MarkStable(nil, CatalogDriven(), cat)
	})

	t.Run("HiddenNeverStable", func(t *testing.T) {
		entries := plain("0.29.0-beta.1", "0.28.0")
		entries[0] = entries[0].Hidden()
		MarkStable(entries, FirstUnmarked(nil), nil)
		assert.False(t, entries[0].Stable)
		assert.True(t, entries[1].Stable)
	})
}

func TestDeriveGameVersions(t *testing.T) {
	cat := testCatalog(1, "1.3", "1.3-pre", "1.2")
	intermediary := plain("1.3-client", "1.3-server", "1.3-pre", "1.2", "1.3")

	got := DeriveGameVersions(intermediary, cat)
	assert.Equal(t, []version.GameVersion{
		{Version: "1.3", Stable: true},
		{Version: "1.3-pre", Stable: false},
		{Version: "1.2", Stable: true},
	}, got)

	seen := map[string]bool{}
	for _, g := range got {
		assert.False(t, seen[g.Version])
		seen[g.Version] = true
	}
}

func TestResolvePolicy(t *testing.T) {
	p, err := ResolvePolicy("auto", CatalogDriven(), nil, false)
	require.NoError(t, err)
	assert.True(t, p.IsCatalogDriven())

	p, err = ResolvePolicy("", CatalogDriven(), []string{"1.0"}, true)
	require.NoError(t, err)
	assert.False(t, p.IsCatalogDriven())
	assert.True(t, p.Excludes("1.0"))

	p, err = ResolvePolicy("catalog", FirstUnmarked(nil), []string{"1.0"}, true)
	require.NoError(t, err)
	assert.True(t, p.IsCatalogDriven())

	p, err = ResolvePolicy("FIRST", CatalogDriven(), nil, false)
	require.NoError(t, err)
	assert.False(t, p.IsCatalogDriven())

	_, err = ResolvePolicy("newest", CatalogDriven(), nil, false)
	assert.Error(t, err)
}
