package catalog

import (
	"sort"
	"time"
)

// TypeRelease marks a full game release in the catalog.
const TypeRelease = "release"

// Entry is one game version of a generation's manifest.
type Entry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Time        string `json:"time"`
	ReleaseTime string `json:"releaseTime"`
	Details     string `json:"details"`
	DetailsSha1 string `json:"detailsSha1"`
}

// Catalog is an immutable, release-time ordered list of game versions.
type Catalog struct {
	generation int
	entries    []Entry
	index      map[string]int
}

// New sorts entries by release time, newest first, keeping the original order
// for equal timestamps. The first occurrence of a duplicated id wins.
func New(generation int, entries []Entry) *Catalog {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return newerThan(sorted[i].ReleaseTime, sorted[j].ReleaseTime)
	})

	index := make(map[string]int, len(sorted))
	for i, e := range sorted {
		if _, ok := index[e.ID]; !ok {
			index[e.ID] = i
		}
	}

	return &Catalog{generation: generation, entries: sorted, index: index}
}

// Empty returns a catalog without entries.
func Empty(generation int) *Catalog {
	return New(generation, nil)
}

// Generation returns the generation the catalog belongs to.
func (c *Catalog) Generation() int {
	return c.generation
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// IndexOf returns the recency rank of id; lower is more recent.
func (c *Catalog) IndexOf(id string) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Contains reports whether id is a known game version.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// IsStable reports whether id is a release-typed game version.
func (c *Catalog) IsStable(id string) bool {
	e, ok := c.Entry(id)
	return ok && e.Type == TypeRelease
}

// Entry looks up a single entry.
func (c *Catalog) Entry(id string) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Entries returns a copy of the sorted entries.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// newerThan compares RFC 3339 timestamps, falling back to string order when
// either side does not parse.
func newerThan(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339, a)
	tb, errB := time.Parse(time.RFC3339, b)
	if errA != nil || errB != nil {
		return a > b
	}
	return ta.After(tb)
}
