// Package versions serves the reconciled version index over HTTP.
//
// Every route reads from the snapshot pinned to the request by the ready
// middleware, so a single response never mixes two refreshes. Until the first
// snapshot is published all routes answer 503.
//
// # HTTP Endpoints
//
//   - GET /v3/versions : generation bounds, cross-generation lists and library upgrades.
//   - GET /v3/versions/{raven|sparrow|nests}[/:game_version]
//   - GET /v3/versions/game/{raven|sparrow|nests}
//   - GET /v3/versions/installer
//   - GET /v3/versions/gen<N>/game, /game/intermediary, /game/feather
//   - GET /v3/versions/gen<N>/intermediary[/:game_version], /feather[/:game_version]
//   - GET /v3/versions/gen<N>/{fabric|quilt}-loader[/:game_version[/:loader_version]]
//   - GET /v3/versions/gen<N>/osl, /osl/:version, /osl/:module/:game_version[/:base_version]
//   - GET /v3/versions/gen<N>/libraries/:game_version
//
// List routes accept the non-negative "limit" and "skip" query parameters.
package versions
