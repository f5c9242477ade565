// Package overrides reads the operator-maintained files that steer snapshot
// building: per-artifact stability exclusion lists and library upgrades.
//
// Exclusion files are named after the artifact they apply to,
// <group with dots replaced by underscores>_<artifact>.txt, and list one
// version per line. Their presence switches the artifact to first-unmarked
// stability. The library upgrade file is library-upgrades-v3.json.
//
// A Watcher reports changes to either kind of file so a rebuild can be
// triggered without a restart.
package overrides
