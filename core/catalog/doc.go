// Package catalog provides the per-generation game version catalog and the
// normalized semantic versions used for ordered comparisons.
//
// A Catalog is sorted by release time, newest first; IndexOf is the recency
// rank used to order reconciled collections. A Normalizer lazily resolves a
// game version id to a semver value through that version's details document
// and memoizes the answer for the lifetime of the snapshot owning it.
package catalog
