package versions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ornithe-meta/core/compat"
	"ornithe-meta/core/launcher"
	"ornithe-meta/core/snapshot"
	"ornithe-meta/core/version"

	"go.uber.org/zap"
)

// ErrLauncherMeta means the loader's launcher metadata could not be loaded.
var ErrLauncherMeta = errors.New("launcher meta unavailable")

// LauncherSource resolves launcher metadata of loader builds.
type LauncherSource interface {
	Meta(ctx context.Context, repo string, loader version.Version) (*launcher.Meta, error)
}

// Summary is the body of GET /v3/versions.
type Summary struct {
	Generations     snapshot.Generations     `json:"generations"`
	Raven           []version.Version        `json:"raven"`
	Sparrow         []version.Version        `json:"sparrow"`
	Nests           []version.Version        `json:"nests"`
	Installer       []version.Version        `json:"installer"`
	LibraryUpgrades []compat.LibraryOverride `json:"libraryUpgrades"`
	BuiltAt         time.Time                `json:"builtAt"`
}

// LoaderInfo is a loader build paired with the intermediary of a game version.
type LoaderInfo struct {
	Loader       version.Version `json:"loader"`
	Intermediary version.Version `json:"intermediary"`
	LauncherMeta *launcher.Meta  `json:"launcherMeta,omitempty"`
}

// Service answers version queries against a snapshot.
type Service struct {
	launcher LauncherSource
	cfg      snapshot.Config
	logger   *zap.Logger
}

// NewService creates a new versions service.
func NewService(launcher LauncherSource, cfg snapshot.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{launcher: launcher, cfg: cfg, logger: logger}
}

// Summary describes the snapshot's generations and cross-generation lists.
func (s *Service) Summary(snap *snapshot.Snapshot) Summary {
	return Summary{
		Generations:     snap.Generations(),
		Raven:           snap.Raven(),
		Sparrow:         snap.Sparrow(),
		Nests:           snap.Nests(),
		Installer:       snap.Installer(),
		LibraryUpgrades: snap.LibraryOverrides(),
		BuiltAt:         snap.BuiltAt(),
	}
}

// CrossGeneration returns the raven, sparrow or nests list.
func (s *Service) CrossGeneration(snap *snapshot.Snapshot, family string) ([]version.Version, bool) {
	switch family {
	case "raven":
		return snap.Raven(), true
	case "sparrow":
		return snap.Sparrow(), true
	case "nests":
		return snap.Nests(), true
	default:
		return nil, false
	}
}

// LoaderInfo pairs one loader build with the intermediary of gameVersion and
// attaches the build's launcher metadata.
func (s *Service) LoaderInfo(ctx context.Context, snap *snapshot.Snapshot, gen int, lt version.LoaderType, gameVersion, loaderVersion string) (LoaderInfo, error) {
	info, err := snap.LoaderInfo(gen, lt, gameVersion, loaderVersion)
	if err != nil {
		return LoaderInfo{}, err
	}

	meta, err := s.launcher.Meta(ctx, s.cfg.LoaderMavenURL(lt), info.Loader)
	if err != nil {
		return LoaderInfo{}, fmt.Errorf("%w: %v", ErrLauncherMeta, err)
	}
	return LoaderInfo{Loader: info.Loader, Intermediary: info.Intermediary, LauncherMeta: meta}, nil
}

// LoaderInfos pairs every public loader build with the intermediary of
// gameVersion.
func (s *Service) LoaderInfos(snap *snapshot.Snapshot, gen int, lt version.LoaderType, gameVersion string) []LoaderInfo {
	infos := snap.LoaderInfos(gen, lt, gameVersion)
	out := make([]LoaderInfo, len(infos))
	for i, info := range infos {
		out[i] = LoaderInfo{Loader: info.Loader, Intermediary: info.Intermediary}
	}
	return out
}
