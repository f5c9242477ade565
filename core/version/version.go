package version

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies how a version string is interpreted.
type Kind int

const (
	KindPlain Kind = iota
	KindBuild
	KindBuildGame
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindBuild:
		return "build"
	case KindBuildGame:
		return "build-game"
	case KindURL:
		return "url"
	default:
		return "unknown"
	}
}

// Version is a single artifact version.
//
// Values are copied, never shared: reconciliation works on its own slice and
// only ever flips Stable on that copy.
type Version struct {
	Maven       string
	Version     string
	Separator   string
	Build       int
	GameVersion string
	URL         string
	Stable      bool

	kind   Kind
	hidden bool
}

// Coordinate is a parsed Maven coordinate.
type Coordinate struct {
	Group      string
	Artifact   string
	Version    string
	Classifier string
}

// ParseCoordinate splits group:artifact:version[:classifier].
func ParseCoordinate(maven string) (Coordinate, error) {
	parts := strings.Split(maven, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return Coordinate{}, fmt.Errorf("invalid maven notation %q", maven)
	}
	for _, p := range parts {
		if p == "" {
			return Coordinate{}, fmt.Errorf("invalid maven notation %q", maven)
		}
	}
	c := Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}
	if len(parts) == 4 {
		c.Classifier = parts[3]
	}
	return c, nil
}

// String joins the coordinate back into maven notation.
func (c Coordinate) String() string {
	s := c.Group + ":" + c.Artifact + ":" + c.Version
	if c.Classifier != "" {
		s += ":" + c.Classifier
	}
	return s
}

// Path is the repository path of the coordinate's version directory.
func (c Coordinate) Path() string {
	return strings.ReplaceAll(c.Group, ".", "/") + "/" + c.Artifact + "/" + c.Version
}

// FileURL builds the url of an artifact file with the given extension.
func (c Coordinate) FileURL(repo, ext string) string {
	return strings.TrimSuffix(repo, "/") + "/" + c.Path() + "/" + c.Artifact + "-" + c.Version + "." + ext
}

// New parses maven into a version of the given kind. repo is only used by
// KindURL to build the download url.
func New(kind Kind, maven, repo string) (Version, error) {
	coord, err := ParseCoordinate(maven)
	if err != nil {
		return Version{}, err
	}

	v := Version{
		Maven:   maven,
		Version: coord.Version,
		kind:    kind,
	}

	switch kind {
	case KindBuild:
		v.Separator, v.Build = parseBuild(coord.Version)
	case KindBuildGame:
		v.Separator, v.Build = parseBuild(coord.Version)
		v.GameVersion = gameOfBuild(coord.Version)
	case KindURL:
		v.URL = coord.FileURL(repo, "jar")
	}

	return v, nil
}

// MustNew is New for static input; it panics on malformed coordinates.
func MustNew(kind Kind, maven string) Version {
	v, err := New(kind, maven, "")
	if err != nil {
		panic(err)
	}
	return v
}

// Kind returns the kind the version was parsed as.
func (v Version) Kind() Kind {
	return v.kind
}

// IsPublic reports whether the version shows up in default listings.
func (v Version) IsPublic() bool {
	return !v.hidden
}

// Hidden returns a copy excluded from default listings.
func (v Version) Hidden() Version {
	v.hidden = true
	return v
}

// GameVersionID returns the game version the entry targets, without side
// suffix. Build and URL versions do not target a game version.
func (v Version) GameVersionID() string {
	switch v.kind {
	case KindPlain:
		return StripSide(v.Version)
	case KindBuildGame:
		return StripSide(v.GameVersion)
	default:
		return ""
	}
}

// Matches reports whether the entry is the one published for gameVersion.
// Build-game entries compare their game version, every other kind its
// version string.
func (v Version) Matches(gameVersion string) bool {
	if v.kind == KindBuildGame {
		return v.GameVersion == gameVersion
	}
	return v.Version == gameVersion
}

// Filter returns the entries matching gameVersion, in order.
func Filter(entries []Version, gameVersion string) []Version {
	out := make([]Version, 0)
	for _, e := range entries {
		if e.Matches(gameVersion) {
			out = append(out, e)
		}
	}
	return out
}

// Coordinate returns the parsed maven coordinate.
func (v Version) Coordinate() Coordinate {
	c, _ := ParseCoordinate(v.Maven)
	return c
}

// StripSide removes a trailing -client or -server.
func StripSide(s string) string {
	if strings.HasSuffix(s, "-client") || strings.HasSuffix(s, "-server") {
		return s[:len(s)-len("-client")]
	}
	return s
}

func parseBuild(s string) (string, int) {
	sep := "."
	if strings.Contains(s, "+build.") {
		sep = "+build."
	}
	idx := strings.LastIndex(s, ".")
	if idx < 0 {
		return sep, 0
	}
	n, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return sep, 0
	}
	return sep, n
}

func gameOfBuild(s string) string {
	if idx := strings.LastIndex(s, "+"); idx >= 0 {
		return s[:idx]
	}
	return s
}

type plainJSON struct {
	Maven   string `json:"maven"`
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
}

type buildJSON struct {
	Separator string `json:"separator"`
	Build     int    `json:"build"`
	Maven     string `json:"maven"`
	Version   string `json:"version"`
	Stable    bool   `json:"stable"`
}

type buildGameJSON struct {
	GameVersion string `json:"gameVersion"`
	Separator   string `json:"separator"`
	Build       int    `json:"build"`
	Maven       string `json:"maven"`
	Version     string `json:"version"`
	Stable      bool   `json:"stable"`
}

type urlJSON struct {
	URL     string `json:"url"`
	Maven   string `json:"maven"`
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
}

// MarshalJSON renders the fields relevant to the version's kind.
func (v Version) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBuild:
		return json.Marshal(buildJSON{v.Separator, v.Build, v.Maven, v.Version, v.Stable})
	case KindBuildGame:
		return json.Marshal(buildGameJSON{v.GameVersion, v.Separator, v.Build, v.Maven, v.Version, v.Stable})
	case KindURL:
		return json.Marshal(urlJSON{v.URL, v.Maven, v.Version, v.Stable})
	default:
		return json.Marshal(plainJSON{v.Maven, v.Version, v.Stable})
	}
}

// GameVersion is a game version entry derived from a reconciled collection.
type GameVersion struct {
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
}

// DistinctGames lists the game versions targeted by entries, first
// occurrence wins and carries that entry's stability.
func DistinctGames(entries []Version) []GameVersion {
	seen := make(map[string]struct{}, len(entries))
	out := make([]GameVersion, 0, len(entries))
	for _, e := range entries {
		id := e.Version
		if e.kind == KindBuildGame {
			id = e.GameVersion
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, GameVersion{Version: id, Stable: e.Stable})
	}
	return out
}

// Clone copies a collection so callers cannot alias published data.
func Clone(entries []Version) []Version {
	if entries == nil {
		return nil
	}
	out := make([]Version, len(entries))
	copy(out, entries)
	return out
}
