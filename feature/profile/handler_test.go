package profile_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ornithe-meta/core/launcher"
	"ornithe-meta/core/snapshot"
	"ornithe-meta/core/snapshot/snapshottest"
	"ornithe-meta/core/version"
	"ornithe-meta/feature/profile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fabricMeta = `{
	"version": 1,
	"libraries": {
		"client": [{"name": "client:lib:1"}],
		"common": [{"name": "org.ow2.asm:asm:9.6", "url": "https://maven.fabricmc.net/"}],
		"server": [{"name": "server:lib:1"}]
	},
	"mainClass": {
		"client": "net.fabricmc.loader.impl.launch.knot.KnotClient",
		"server": "net.fabricmc.loader.impl.launch.knot.KnotServer",
		"serverLauncher": "net.fabricmc.loader.launch.server.FabricServerLauncher"
	}
}`

type staticLauncher struct{}

func (staticLauncher) Meta(context.Context, string, version.Version) (*launcher.Meta, error) {
	return launcher.Parse([]byte(fabricMeta))
}

func setup(t *testing.T) *fiber.App {
	t.Helper()
	f := snapshottest.NewFixture()
	app := fiber.New()
	feature := profile.NewFeature(f.Store(t), staticLauncher{}, f.Config, nil)
	require.NoError(t, feature.Load(app))
	assert.Equal(t, "profile", feature.Name())
	assert.True(t, feature.IsEnabled())
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func libraryNames(t *testing.T, p profile.Profile) []string {
	t.Helper()
	out := make([]string, len(p.Libraries))
	for i, raw := range p.Libraries {
		var lib struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(raw, &lib))
		out[i] = lib.Name
	}
	return out
}

func TestHandler_ProfileJSON(t *testing.T) {
	app := setup(t)

	resp, body := get(t, app, "/v3/versions/gen1/fabric-loader/1.0/0.18.0/profile/json")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "public, max-age=86400", resp.Header.Get("Cache-Control"))

	var p profile.Profile
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, "fabric-loader-0.18.0-1.0-ornithe-gen1", p.ID)
	assert.Equal(t, "1.0-vanilla", p.InheritsFrom)
	assert.Equal(t, "release", p.Type)
	assert.Equal(t, "net.fabricmc.loader.impl.launch.knot.KnotClient", p.MainClass)
	assert.Empty(t, p.LauncherMainClass)
	assert.NotNil(t, p.Arguments.Game)
	assert.Equal(t, p.ReleaseTime, p.Time)
	_, err := time.Parse("2006-01-02T15:04:05-0700", p.Time)
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"org.ow2.asm:asm:9.6",
		"net.ornithemc:calamus-intermediary:1.0",
		"net.fabricmc:fabric-loader:0.18.0",
		"client:lib:1",
		"org.lwjgl.lwjgl:lwjgl:2.9.4",
	}, libraryNames(t, p))
	assert.JSONEq(t, `{"name":"net.ornithemc:calamus-intermediary:1.0","url":"`+snapshottest.MavenURL+`"}`, string(p.Libraries[1]))
	assert.JSONEq(t, `{"name":"net.fabricmc:fabric-loader:0.18.0","url":"`+snapshottest.FabricURL+`"}`, string(p.Libraries[2]))
}

func TestHandler_ServerJSON(t *testing.T) {
	app := setup(t)

	resp, body := get(t, app, "/v3/versions/gen1/quilt-loader/1.2/0.29.1/server/json")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var p profile.Profile
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, "quilt-loader-0.29.1-1.2-ornithe-gen1", p.ID)
	assert.Equal(t, "net.fabricmc.loader.impl.launch.knot.KnotServer", p.MainClass)
	assert.Equal(t, "net.fabricmc.loader.launch.server.FabricServerLauncher", p.LauncherMainClass)
	assert.Equal(t, []string{
		"org.ow2.asm:asm:9.6",
		"net.ornithemc:calamus-intermediary:1.2",
		"org.quiltmc:quilt-loader:0.29.1",
		"server:lib:1",
	}, libraryNames(t, p))
}

func TestHandler_ProfileZip(t *testing.T) {
	app := setup(t)

	resp, body := get(t, app, "/v3/versions/gen2/fabric-loader/1.3/0.18.0/profile/zip")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="fabric-loader-0.18.0-1.3-ornithe-gen2.zip"`, resp.Header.Get("Content-Disposition"))
	assert.Equal(t, "public, max-age=86400", resp.Header.Get("Cache-Control"))

	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	name := "fabric-loader-0.18.0-1.3-ornithe-gen2"
	assert.Equal(t, name+"/"+name+".json", zr.File[0].Name)
	assert.Equal(t, name+"/"+name+".jar", zr.File[1].Name)
	assert.Zero(t, zr.File[1].UncompressedSize64)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	var p profile.Profile
	require.NoError(t, json.NewDecoder(rc).Decode(&p))
	assert.Equal(t, name, p.ID)
}

func TestHandler_Errors(t *testing.T) {
	app := setup(t)

	resp, body := get(t, app, "/v3/versions/gen1/fabric-loader/1.2/9.9/profile/json")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "no loader version found for 1.2", string(body))

	resp, body = get(t, app, "/v3/versions/gen1/fabric-loader/9.9/0.18.0/profile/zip")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "no mappings version found for 9.9", string(body))

	resp, _ = get(t, app, "/v3/versions/gen7/fabric-loader/1.2/0.18.0/server/json")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	store := snapshot.NewStore()
	notReady := fiber.New()
	require.NoError(t, profile.NewFeature(store, staticLauncher{}, snapshot.Config{}, nil).Load(notReady))
	resp, _ = get(t, notReady, "/v3/versions/gen1/fabric-loader/1.2/0.18.0/profile/json")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestZip(t *testing.T) {
	data, err := profile.Zip("p", []byte(`{}`))
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "p/p.json", zr.File[0].Name)
	assert.Equal(t, uint64(2), zr.File[0].UncompressedSize64)
}

func TestArchiveName(t *testing.T) {
	info := snapshot.LoaderInfo{
		Type:         version.LoaderFabric,
		Loader:       version.MustNew(version.KindBuild, "net.fabricmc:fabric-loader:0.18.0"),
		Intermediary: version.MustNew(version.KindPlain, "net.ornithemc:calamus-intermediary-gen2:1.3-client"),
	}
	assert.Equal(t, "fabric-loader-0.18.0-1.3-client-ornithe-gen2", profile.ArchiveName(2, info))
	assert.Equal(t, "fabric-loader-0.18.0-1.3-ornithe-gen2", info.ProfileName(2, "client"))
}
