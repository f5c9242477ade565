package version_test

import (
	"encoding/json"
	"testing"

	"ornithe-meta/core/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		v, err := version.New(version.KindPlain, "net.ornithemc:calamus-intermediary:1.12.2-client", "")
		require.NoError(t, err)
		assert.Equal(t, "1.12.2-client", v.Version)
		assert.Equal(t, "1.12.2", v.GameVersionID())
		assert.True(t, v.IsPublic())
	})

	t.Run("Build", func(t *testing.T) {
		v, err := version.New(version.KindBuild, "net.fabricmc:fabric-loader:0.16.10", "")
		require.NoError(t, err)
		assert.Equal(t, ".", v.Separator)
		assert.Equal(t, 10, v.Build)
		assert.Empty(t, v.GameVersionID())
	})

	t.Run("BuildGame", func(t *testing.T) {
		v, err := version.New(version.KindBuildGame, "net.ornithemc:feather:1.8.9-server+build.12", "")
		require.NoError(t, err)
		assert.Equal(t, "+build.", v.Separator)
		assert.Equal(t, 12, v.Build)
		assert.Equal(t, "1.8.9-server", v.GameVersion)
		assert.Equal(t, "1.8.9", v.GameVersionID())
	})

	t.Run("URL", func(t *testing.T) {
		v, err := version.New(version.KindURL, "net.ornithemc:ornithe-installer:1.0.0", "https://maven.ornithemc.net/releases/")
		require.NoError(t, err)
		assert.Equal(t, "https://maven.ornithemc.net/releases/net/ornithemc/ornithe-installer/1.0.0/ornithe-installer-1.0.0.jar", v.URL)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := version.New(version.KindPlain, "net.ornithemc:feather", "")
		assert.Error(t, err)
		_, err = version.New(version.KindPlain, "a::1.0", "")
		assert.Error(t, err)
	})
}

func TestMarshalJSON(t *testing.T) {
	v := version.MustNew(version.KindBuildGame, "net.ornithemc:feather:1.8.9+build.3")
	v.Stable = true

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "1.8.9", got["gameVersion"])
	assert.Equal(t, "+build.", got["separator"])
	assert.Equal(t, float64(3), got["build"])
	assert.Equal(t, true, got["stable"])

	plain, err := json.Marshal(version.MustNew(version.KindPlain, "g:a:1.0"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"maven":"g:a:1.0","version":"1.0","stable":false}`, string(plain))
}

func TestDistinctGames(t *testing.T) {
	entries := []version.Version{
		version.MustNew(version.KindBuildGame, "g:feather:1.2+build.2"),
		version.MustNew(version.KindBuildGame, "g:feather:1.2+build.1"),
		version.MustNew(version.KindBuildGame, "g:feather:1.1+build.4"),
	}
	entries[0].Stable = true

	games := version.DistinctGames(entries)
	assert.Equal(t, []version.GameVersion{{Version: "1.2", Stable: true}, {Version: "1.1"}}, games)
}

func TestClone(t *testing.T) {
	src := []version.Version{version.MustNew(version.KindPlain, "g:a:1.0")}
	dst := version.Clone(src)
	dst[0].Stable = true
	assert.False(t, src[0].Stable)
	assert.Nil(t, version.Clone(nil))
}

func TestGeneration(t *testing.T) {
	assert.Equal(t, "feather", version.ForGeneration("feather", 1))
	assert.Equal(t, "feather-gen2", version.ForGeneration("feather", 2))

	n, err := version.ParseGeneration("gen3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, bad := range []string{"3", "gen", "gen0", "genx", "raven"} {
		_, err := version.ParseGeneration(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoaderType(t *testing.T) {
	lt, ok := version.ParseLoaderType("quilt-loader")
	require.True(t, ok)
	assert.Equal(t, version.LoaderQuilt, lt)
	assert.Equal(t, "org.quiltmc", lt.Group())
	assert.Equal(t, "quilt-loader", lt.Artifact())
	assert.False(t, lt.IsPublic("0.29.0-beta.1"))
	assert.True(t, lt.IsPublic("0.29.0"))
	assert.True(t, version.LoaderFabric.IsPublic("0.16.0-beta"))

	_, ok = version.ParseLoaderType("forge")
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	entries := []version.Version{
		version.MustNew(version.KindBuildGame, "net.ornithemc:feather:1.2+build.3"),
		version.MustNew(version.KindBuildGame, "net.ornithemc:feather:1.1+build.1"),
		version.MustNew(version.KindBuildGame, "net.ornithemc:feather:1.2+build.2"),
	}
	got := version.Filter(entries, "1.2")
	require.Len(t, got, 2)
	assert.Equal(t, "1.2+build.3", got[0].Version)
	assert.Equal(t, "1.2+build.2", got[1].Version)
	assert.NotNil(t, version.Filter(entries, "9.9"))
	assert.Empty(t, version.Filter(entries, "9.9"))

	plain := version.MustNew(version.KindPlain, "net.ornithemc:calamus-intermediary:1.2-client")
	assert.True(t, plain.Matches("1.2-client"))
	assert.False(t, plain.Matches("1.2"))
}
