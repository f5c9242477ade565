// Package maven fetches raw metadata from Maven-style repositories.
//
// The Client wraps net/http with a DNS cache, bounded exponential retries and a
// circuit breaker per upstream host, so one unreachable mirror fails fast
// instead of starving a whole refresh cycle.
//
// # Documents
//
//   - maven-metadata.xml: FetchVersions returns coordinates newest first.
//   - POM files: FetchDependencies returns filtered dependency coordinates.
//   - Repository details API: ListDirectories returns sub-directory names.
//   - Arbitrary JSON: GetJSON decodes any JSON document (catalogs, details).
//
// Fetches flagged as optional degrade to an empty result and a warning.
package maven
