// Package launcher loads the launcher metadata document each loader build
// publishes next to its jar (<artifact>-<version>.json). Documents are
// immutable once published, so they are memoized in memory and, when object
// storage is configured, persisted there to survive restarts.
package launcher
