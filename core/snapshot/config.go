package snapshot

import (
	"time"

	"ornithe-meta/core/version"
)

// Config holds configuration for snapshot building.
type Config struct {
	// LatestGeneration is the highest generation served.
	LatestGeneration int `mapstructure:"latest_generation" default:"3"`
	// StableGeneration is the highest generation whose mappings must exist.
	StableGeneration int `mapstructure:"stable_generation" default:"2"`
	// RefreshIntervalSeconds is the delay between background rebuilds.
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds" default:"60"`
	// FetchWorkers bounds concurrent upstream fetches during a build.
	FetchWorkers int `mapstructure:"fetch_workers" default:"8"`

	// OrnitheMavenURL hosts mappings, OSL, raven, sparrow, nests and the installer.
	OrnitheMavenURL string `mapstructure:"ornithe_maven_url" default:"https://maven.ornithemc.net/releases/"`
	// OrnitheDetailsURL is the directory listing API of the Ornithe maven.
	OrnitheDetailsURL string `mapstructure:"ornithe_details_url" default:"https://maven.ornithemc.net/api/maven/details/releases/"`
	// FabricMavenURL hosts fabric loader builds.
	FabricMavenURL string `mapstructure:"fabric_maven_url" default:"https://maven.fabricmc.net/"`
	// QuiltMavenURL hosts quilt loader builds.
	QuiltMavenURL string `mapstructure:"quilt_maven_url" default:"https://maven.quiltmc.org/repository/release/"`
	// CatalogURL is the game version manifest; a %d verb is replaced with the generation.
	CatalogURL string `mapstructure:"catalog_url" default:"https://ornithemc.net/mc-versions/version_manifest.json"`
	// LegacyCatalogURL is the game version manifest of generation 1.
	LegacyCatalogURL string `mapstructure:"legacy_catalog_url" default:"https://skyrising.github.io/mc-versions/version_manifest.json"`

	// OverridesDir holds exclusion lists and library-upgrades-v3.json.
	OverridesDir string `mapstructure:"overrides_dir" default:"."`
	// WatchOverrides rebuilds when an override file changes.
	WatchOverrides bool `mapstructure:"watch_overrides" default:"true"`

	// Stability modes (auto, catalog, first) per artifact family.
	IntermediaryStability string `mapstructure:"intermediary_stability" default:"auto"`
	FeatherStability      string `mapstructure:"feather_stability" default:"auto"`
	OSLStability          string `mapstructure:"osl_stability" default:"auto"`
	LoaderStability       string `mapstructure:"loader_stability" default:"auto"`
	InstallerStability    string `mapstructure:"installer_stability" default:"auto"`
}

// RefreshInterval returns the rebuild interval, at least one second.
func (c Config) RefreshInterval() time.Duration {
	if c.RefreshIntervalSeconds < 1 {
		return time.Second
	}
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

// Workers returns the fetch worker limit, at least one.
func (c Config) Workers() int {
	if c.FetchWorkers < 1 {
		return 1
	}
	return c.FetchWorkers
}

// LoaderMavenURL returns the repository of a loader type.
func (c Config) LoaderMavenURL(lt version.LoaderType) string {
	if lt == version.LoaderQuilt {
		return c.QuiltMavenURL
	}
	return c.FabricMavenURL
}
