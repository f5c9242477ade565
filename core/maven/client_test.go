package maven_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"ornithe-meta/core/maven"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metadataXML = `<?xml version="1.0" encoding="UTF-8"?>
<metadata>
  <groupId>net.ornithemc</groupId>
  <artifactId>calamus-intermediary</artifactId>
  <versioning>
    <versions>
      <version>1.0</version>
      <version>1.1</version>
      <version>1.2</version>
    </versions>
  </versioning>
</metadata>`

const pomXML = `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <modelVersion>4.0.0</modelVersion>
  <dependencies>
    <dependency>
      <groupId>net.ornithemc.osl</groupId>
      <artifactId>core</artifactId>
      <version>0.5.0</version>
    </dependency>
    <dependency>
      <groupId>com.google.code.gson</groupId>
      <artifactId>gson</artifactId>
      <version>2.10</version>
    </dependency>
  </dependencies>
</project>`

func newClient(srv *httptest.Server, retries int) *maven.Client {
	cfg := maven.Config{TimeoutSeconds: 5, MaxRetries: retries, RetryDelayMillis: 1, UserAgent: "test"}
	return maven.NewClient(cfg, maven.WithHTTPClient(srv.Client()))
}

func TestFetchVersions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/net/ornithemc/calamus-intermediary/maven-metadata.xml":
			w.Write([]byte(metadataXML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newClient(srv, 0)

	t.Run("NewestFirst", func(t *testing.T) {
		got, err := c.FetchVersions(context.Background(), srv.URL, "net.ornithemc", "calamus-intermediary", true)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"net.ornithemc:calamus-intermediary:1.2",
			"net.ornithemc:calamus-intermediary:1.1",
			"net.ornithemc:calamus-intermediary:1.0",
		}, got)
	})

	t.Run("RequiredMissing", func(t *testing.T) {
		_, err := c.FetchVersions(context.Background(), srv.URL, "net.ornithemc", "feather-gen9", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, maven.ErrNotFound)
		var fe *maven.FetchError
		assert.ErrorAs(t, err, &fe)
	})

	t.Run("OptionalMissing", func(t *testing.T) {
		got, err := c.FetchVersions(context.Background(), srv.URL, "net.ornithemc", "feather-gen9", false)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestFetchDependencies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/net/ornithemc/osl/0.5.0/osl-0.5.0.pom" {
			w.Write([]byte(pomXML))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := newClient(srv, 0)
	got, err := c.FetchDependencies(context.Background(), srv.URL+"/", "net.ornithemc", "osl", "0.5.0", func(coord string) bool {
		return len(coord) > len("net.ornithemc.osl") && coord[:len("net.ornithemc.osl")] == "net.ornithemc.osl"
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"net.ornithemc.osl:core:0.5.0"}, got)

	all, err := c.FetchDependencies(context.Background(), srv.URL, "net.ornithemc", "osl", "0.5.0", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListDirectories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"files":[
			{"name":"core","type":"DIRECTORY"},
			{"name":"0.5.0","type":"DIRECTORY"},
			{"name":"maven-metadata.xml","type":"FILE"},
			{"name":"entrypoints","type":"DIRECTORY"}
		]}`))
	}))
	defer srv.Close()

	got, err := newClient(srv, 0).ListDirectories(context.Background(), srv.URL+"/net/ornithemc/osl")
	require.NoError(t, err)
	assert.Equal(t, []string{"core", "entrypoints"}, got)
}

func TestRetry(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	err := newClient(srv, 3).GetJSON(context.Background(), srv.URL+"/doc.json", &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, int32(3), hits.Load())
}

func TestNotFoundIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := newClient(srv, 3).Fetch(context.Background(), srv.URL+"/missing")
	assert.ErrorIs(t, err, maven.ErrNotFound)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCircuitBreakerOpens(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newClient(srv, 0)
	for i := 0; i < 5; i++ {
		_, err := c.Fetch(context.Background(), srv.URL+"/doc")
		assert.ErrorIs(t, err, maven.ErrUpstreamDown)
	}
	require.Equal(t, int32(5), hits.Load())

	_, err := c.Fetch(context.Background(), srv.URL+"/doc")
	assert.ErrorIs(t, err, maven.ErrUpstreamDown)
	assert.Equal(t, int32(5), hits.Load())

	states := c.BreakerStates()
	assert.Len(t, states, 1)
	for _, s := range states {
		assert.Equal(t, "open", s)
	}
}
