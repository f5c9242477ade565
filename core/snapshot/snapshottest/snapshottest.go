// Package snapshottest provides in-memory upstreams and a small, fully
// populated fixture for tests that need a built snapshot.
package snapshottest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"ornithe-meta/core/catalog"
	"ornithe-meta/core/compat"
	"ornithe-meta/core/maven"
	"ornithe-meta/core/snapshot"
)

// Fetcher serves raw version data from maps. Version lists are keyed by
// group:artifact, dependencies by group:artifact:version and documents by url.
type Fetcher struct {
	mu          sync.Mutex
	Versions    map[string][]string
	Deps        map[string][]string
	Directories map[string][]string
	Docs        map[string]string
	Errs        map[string]error
	Calls       map[string]int
}

// NewFetcher creates an empty fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Versions:    make(map[string][]string),
		Deps:        make(map[string][]string),
		Directories: make(map[string][]string),
		Docs:        make(map[string]string),
		Errs:        make(map[string]error),
		Calls:       make(map[string]int),
	}
}

func (f *Fetcher) lookup(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[key]++
	return f.Errs[key]
}

// FetchVersions implements snapshot.Fetcher.
func (f *Fetcher) FetchVersions(_ context.Context, _, group, artifact string, required bool) ([]string, error) {
	key := group + ":" + artifact
	if err := f.lookup(key); err != nil {
		if required {
			return nil, err
		}
		return []string{}, nil
	}
	v, ok := f.Versions[key]
	if !ok {
		if required {
			return nil, &maven.FetchError{URL: key, Err: maven.ErrNotFound}
		}
		return []string{}, nil
	}
	return append([]string(nil), v...), nil
}

// FetchDependencies implements snapshot.Fetcher.
func (f *Fetcher) FetchDependencies(_ context.Context, _, group, artifact, version string, filter func(string) bool) ([]string, error) {
	key := group + ":" + artifact + ":" + version
	if err := f.lookup(key); err != nil {
		return nil, err
	}
	out := []string{}
	for _, d := range f.Deps[key] {
		if filter == nil || filter(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

// ListDirectories implements snapshot.Fetcher.
func (f *Fetcher) ListDirectories(_ context.Context, url string) ([]string, error) {
	if err := f.lookup(url); err != nil {
		return nil, err
	}
	return append([]string{}, f.Directories[url]...), nil
}

// GetJSON implements catalog.JSONFetcher.
func (f *Fetcher) GetJSON(_ context.Context, url string, v any) error {
	if err := f.lookup(url); err != nil {
		return err
	}
	doc, ok := f.Docs[url]
	if !ok {
		return &maven.FetchError{URL: url, Err: maven.ErrNotFound}
	}
	return json.Unmarshal([]byte(doc), v)
}

// Catalogs serves prepared catalogs.
type Catalogs struct {
	Catalogs map[int]*catalog.Catalog
	Errs     map[int]error
}

// Catalog implements snapshot.CatalogSource.
func (c *Catalogs) Catalog(_ context.Context, generation int) (*catalog.Catalog, error) {
	if err := c.Errs[generation]; err != nil {
		return nil, err
	}
	cat, ok := c.Catalogs[generation]
	if !ok {
		return nil, fmt.Errorf("loading gen%d game catalog: %w", generation, maven.ErrNotFound)
	}
	return cat, nil
}

// Overrides serves prepared overrides. Exclusions are keyed by group:artifact.
type Overrides struct {
	Exclude   map[string][]string
	Libraries []compat.LibraryOverride
	Err       error
}

// Exclusions implements snapshot.OverrideSource.
func (o *Overrides) Exclusions(group, artifact string) ([]string, bool, error) {
	v, ok := o.Exclude[group+":"+artifact]
	return v, ok, nil
}

// LibraryUpgrades implements snapshot.OverrideSource.
func (o *Overrides) LibraryUpgrades() ([]compat.LibraryOverride, error) {
	return o.Libraries, o.Err
}

// Fixture is a two generation upstream.
type Fixture struct {
	Config    snapshot.Config
	Fetcher   *Fetcher
	Catalogs  *Catalogs
	Overrides *Overrides
}

const (
	MavenURL   = "https://maven.test/releases/"
	DetailsURL = "https://maven.test/details/"
	FabricURL  = "https://fabric.test/"
	QuiltURL   = "https://quilt.test/"
)

func detailsURL(gen int, id string) string {
	return fmt.Sprintf("https://catalog.test/gen%d/%s.json", gen, id)
}

func entry(gen int, id, typ, released string) catalog.Entry {
	return catalog.Entry{ID: id, Type: typ, ReleaseTime: released, Details: detailsURL(gen, id)}
}

func coords(ga string, versions ...string) []string {
	out := make([]string, len(versions))
	for i, v := range versions {
		out[i] = ga + ":" + v
	}
	return out
}

// NewFixture returns a fixture with generation 1 stable and generation 2
// latest:
//
//	gen1 catalog: 1.2, 12w08a (snapshot), 1.1, 1.0
//	gen2 catalog: 1.3, 1.2
func NewFixture() *Fixture {
	f := NewFetcher()

	gen1 := []catalog.Entry{
		entry(1, "1.0", "release", "2011-11-18T22:00:00+00:00"),
		entry(1, "1.1", "release", "2012-01-12T22:00:00+00:00"),
		entry(1, "12w08a", "snapshot", "2012-02-22T22:00:00+00:00"),
		entry(1, "1.2", "release", "2012-03-01T22:00:00+00:00"),
	}
	gen2 := []catalog.Entry{
		entry(2, "1.2", "release", "2012-03-01T22:00:00+00:00"),
		entry(2, "1.3", "release", "2012-08-01T22:00:00+00:00"),
	}
	normalized := map[string]string{"1.0": "1.0.0", "1.1": "1.1.0", "12w08a": "1.2.0-alpha.12.8.a", "1.2": "1.2.0", "1.3": "1.3.0"}
	for _, e := range gen1 {
		f.Docs[e.Details] = fmt.Sprintf(`{"id":%q,"normalizedVersion":%q}`, e.ID, normalized[e.ID])
	}
	for _, e := range gen2 {
		f.Docs[e.Details] = fmt.Sprintf(`{"id":%q,"normalizedVersion":%q}`, e.ID, normalized[e.ID])
	}

	f.Versions["net.ornithemc:calamus-intermediary"] = coords("net.ornithemc:calamus-intermediary", "1.0", "1.2", "12w08a", "1.1", "9.9")
	f.Versions["net.ornithemc:feather"] = coords("net.ornithemc:feather", "1.2+build.3", "1.2+build.2", "1.0+build.1")
	f.Versions["net.ornithemc:osl"] = coords("net.ornithemc:osl", "0.2.0", "0.1.0")
	f.Deps["net.ornithemc:osl:0.2.0"] = []string{"net.ornithemc.osl:entrypoints:0.4.0+mc1.0-mc1.2", "org.example:other:1.0"}
	f.Deps["net.ornithemc:osl:0.1.0"] = []string{"net.ornithemc.osl:entrypoints:0.2.0"}
	f.Directories[DetailsURL+"net/ornithemc/osl"] = []string{"entrypoints"}
	f.Versions["net.ornithemc.osl:entrypoints"] = coords("net.ornithemc.osl:entrypoints", "0.4.0+mc1.0-mc1.2", "0.3.0+mc1.0#1.1", "0.2.0")

	f.Versions["net.ornithemc:calamus-intermediary-gen2"] = coords("net.ornithemc:calamus-intermediary-gen2", "1.3", "1.2")
	f.Versions["net.ornithemc:feather-gen2"] = coords("net.ornithemc:feather-gen2", "1.3+build.1")

	f.Versions["net.fabricmc:fabric-loader"] = coords("net.fabricmc:fabric-loader", "0.18.0", "0.17.2", "0.16.0")
	f.Versions["org.quiltmc:quilt-loader"] = coords("org.quiltmc:quilt-loader", "0.30.0-beta.1", "0.29.1", "0.28.0")

	f.Versions["net.ornithemc:raven"] = coords("net.ornithemc:raven", "1.3+build.1", "1.0+build.2", "0.9+build.1")
	f.Versions["net.ornithemc:sparrow"] = coords("net.ornithemc:sparrow", "1.1+build.1")
	f.Versions["net.ornithemc:nests"] = []string{}
	f.Versions["net.ornithemc:ornithe-installer"] = coords("net.ornithemc:ornithe-installer", "1.0.0", "0.9.0")

	maxGen := 1
	return &Fixture{
		Config: snapshot.Config{
			LatestGeneration:  2,
			StableGeneration:  1,
			FetchWorkers:      4,
			OrnitheMavenURL:   MavenURL,
			OrnitheDetailsURL: DetailsURL,
			FabricMavenURL:    FabricURL,
			QuiltMavenURL:     QuiltURL,
		},
		Fetcher: f,
		Catalogs: &Catalogs{Catalogs: map[int]*catalog.Catalog{
			1: catalog.New(1, gen1),
			2: catalog.New(2, gen2),
		}},
		Overrides: &Overrides{
			Libraries: []compat.LibraryOverride{
				{Name: "org.lwjgl.lwjgl:lwjgl:2.9.4", URL: compat.DefaultLibraryURL, MaxGeneration: &maxGen, MinGameVersion: "1.0", MaxGameVersion: "1.1"},
			},
		},
	}
}

// Builder returns a builder over the fixture.
func (f *Fixture) Builder() *snapshot.Builder {
	return snapshot.NewBuilder(f.Config, f.Fetcher, f.Catalogs, f.Overrides, nil)
}

// MustBuild builds the fixture snapshot, failing tb on error.
func (f *Fixture) MustBuild(tb testing.TB) *snapshot.Snapshot {
	tb.Helper()
	snap, err := f.Builder().Build(context.Background())
	if err != nil {
		tb.Fatalf("building fixture snapshot: %v", err)
	}
	return snap
}

// Store returns a store with the fixture snapshot published.
func (f *Fixture) Store(tb testing.TB) *snapshot.Store {
	tb.Helper()
	store := snapshot.NewStore()
	store.Publish(f.MustBuild(tb))
	return store
}
