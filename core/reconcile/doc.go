// Package reconcile merges raw artifact version lists with the game version
// catalogs into ordered, validated collections with a single stable entry.
//
// # Per-generation reconciliation
//
// Reconcile sorts a raw list by the catalog rank of each entry's game version
// (newest first, ties keep fetch order), drops entries whose game version is
// not in the catalog, and then marks the stable entry with the family's
// stability Policy:
//
//   - CatalogDriven: the first entry whose game version is a release.
//   - FirstUnmarked: the first public entry not listed in the exclusions.
//
// When no entry qualifies the newest entry is marked, so a non-empty
// collection always has exactly one stable entry.
//
// # Cross-generation reconciliation
//
// ReconcileAcross ranks generation independent artifacts (raven, sparrow,
// nests) by their best rank over all catalogs, keeps entries present in at
// least one catalog and publishes every survivor as stable.
//
// # Usage Example
//
//	r := reconcile.New(logger)
//	intermediary, err := r.Reconcile(reconcile.Family{
//	    Source:     "intermediary",
//	    Generation: 2,
//	    Required:   true,
//	    Policy:     reconcile.CatalogDriven(),
//	}, raw, cat)
//	games := reconcile.DeriveGameVersions(intermediary, cat)
package reconcile
