package profile

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ornithe-meta/core/snapshot"
	"ornithe-meta/core/version"
	"ornithe-meta/feature/versions"

	"go.uber.org/zap"
)

const (
	SideClient = "client"
	SideServer = "server"
)

// timeLayout matches the launcher's ISO 8601 timestamps.
const timeLayout = "2006-01-02T15:04:05-0700"

// Profile is a launcher version profile.
type Profile struct {
	ID                string            `json:"id"`
	InheritsFrom      string            `json:"inheritsFrom"`
	ReleaseTime       string            `json:"releaseTime"`
	Time              string            `json:"time"`
	Type              string            `json:"type"`
	MainClass         string            `json:"mainClass"`
	LauncherMainClass string            `json:"launcherMainClass,omitempty"`
	Arguments         Arguments         `json:"arguments"`
	Libraries         []json.RawMessage `json:"libraries"`
}

// Arguments holds the launch arguments. The launcher rejects profiles
// without a game argument list.
type Arguments struct {
	Game []string `json:"game"`
}

type library struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Service builds profiles.
type Service struct {
	versions *versions.Service
	cfg      snapshot.Config
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new profile service.
func NewService(v *versions.Service, cfg snapshot.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{versions: v, cfg: cfg, logger: logger, now: time.Now}
}

// Build creates the profile of a loader build for side. The returned pairing
// names the download.
func (s *Service) Build(ctx context.Context, snap *snapshot.Snapshot, gen int, lt version.LoaderType, gameVersion, loaderVersion, side string) (*Profile, snapshot.LoaderInfo, error) {
	info, err := s.versions.LoaderInfo(ctx, snap, gen, lt, gameVersion, loaderVersion)
	if err != nil {
		return nil, snapshot.LoaderInfo{}, err
	}
	pair := snapshot.LoaderInfo{Type: lt, Loader: info.Loader, Intermediary: info.Intermediary}
	game := pair.Game(side)

	mainClass, launcherClass, err := info.LauncherMeta.MainClass(side)
	if err != nil {
		return nil, pair, fmt.Errorf("%w: %v", versions.ErrLauncherMeta, err)
	}

	libs := info.LauncherMeta.CommonLibraries()
	libs = append(libs,
		mustMarshal(library{Name: info.Intermediary.Maven, URL: s.cfg.OrnitheMavenURL}),
		mustMarshal(library{Name: info.Loader.Maven, URL: s.cfg.LoaderMavenURL(lt)}),
	)
	libs = append(libs, info.LauncherMeta.SideLibraries(side)...)
	for _, l := range snap.Libraries(ctx, gen, game) {
		libs = append(libs, mustMarshal(l))
	}

	now := s.now().Format(timeLayout)
	return &Profile{
		ID:                pair.ProfileName(gen, side),
		InheritsFrom:      game + "-vanilla",
		ReleaseTime:       now,
		Time:              now,
		Type:              "release",
		MainClass:         mainClass,
		LauncherMainClass: launcherClass,
		Arguments:         Arguments{Game: []string{}},
		Libraries:         libs,
	}, pair, nil
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

// ArchiveName names a pairing's download. Unlike the profile id it keeps the
// intermediary's side suffix.
func ArchiveName(gen int, info snapshot.LoaderInfo) string {
	return fmt.Sprintf("%s-loader-%s-%s-ornithe-gen%d", info.Type, info.Loader.Version, info.Intermediary.Version, gen)
}

// Zip packages a profile the way launchers expect to import it: a directory
// holding the profile json and an empty jar.
func Zip(name string, profileJSON []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create(name + "/" + name + ".json")
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(profileJSON); err != nil {
		return nil, err
	}
	if _, err := zw.Create(name + "/" + name + ".jar"); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
