// Package profile serves launcher profiles for a loader build and game
// version.
//
// A profile inherits the vanilla version, launches the loader's main class
// and lists the loader's libraries followed by the intermediary mappings, the
// loader itself, the side's libraries and any library upgrades that apply to
// the game version.
//
// # HTTP Endpoints
//
//   - GET /v3/versions/gen<N>/{fabric|quilt}-loader/:game_version/:loader_version/profile/json
//   - GET /v3/versions/gen<N>/{fabric|quilt}-loader/:game_version/:loader_version/profile/zip
//   - GET /v3/versions/gen<N>/{fabric|quilt}-loader/:game_version/:loader_version/server/json
package profile
