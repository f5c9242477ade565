// Package snapshot builds and publishes the immutable version index served by
// the HTTP features.
//
// # Building
//
// Builder fetches every raw version list, catalog and override concurrently,
// bounded by a worker limit, then assembles generations in ascending order,
// reconciles the cross-generation families and validates library overrides.
// A build either yields a complete Snapshot or an error; nothing partial is
// ever returned.
//
// # Publishing
//
// Store holds the current snapshot behind an atomic pointer. Readers call
// Current once per request and keep using that value, so a concurrent
// publication never changes what an in-flight request sees.
//
// Refresher owns the Store. Start performs the first build synchronously and
// fails when it does; afterwards a single goroutine rebuilds on an interval
// or when triggered, keeping the previous snapshot when a rebuild fails.
package snapshot
