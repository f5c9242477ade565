// Package version models the artifact versions served by the metadata index.
//
// Every entry is built from a Maven coordinate (group:artifact:version) and
// exposes the game version it targets through GameVersionID, so reconciliation
// code never has to guess how a given artifact family encodes its game version.
//
// # Kinds
//
//   - Plain: intermediary mappings, OSL and OSL modules. The game version is the
//     display version with any -client/-server side suffix removed.
//   - Build: loader builds, carrying a build separator and build number.
//   - BuildGame: feather, raven, sparrow and nests builds (<game>+build.<n>).
//   - URL: installer builds, carrying the download url of the jar.
package version
