package versions

import (
	"errors"
	"fmt"
	"net/url"

	"ornithe-meta/core/logger"
	"ornithe-meta/core/middleware/ready"
	"ornithe-meta/core/snapshot"
	"ornithe-meta/core/utils"
	"ornithe-meta/core/version"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const listCacheControl = "public, max-age=60"

// Handler handles HTTP requests for the version index.
type Handler struct {
	service *Service
	store   ready.Source
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, store ready.Source) *Handler {
	return &Handler{service: service, store: store}
}

// RegisterRoutes registers the version routes. Fixed paths are registered
// before the generation routes so that they win over the :generation param.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/v3/versions", ready.New(h.store))
	group.Get("", h.HandleSummary)
	group.Get("/installer", h.HandleInstaller)
	for _, family := range []string{"raven", "sparrow", "nests"} {
		group.Get("/game/"+family, h.withFamily(family, h.HandleCrossGenerationGames))
		group.Get("/"+family, h.withFamily(family, h.HandleCrossGeneration))
		group.Get("/"+family+"/:game_version", h.withFamily(family, h.HandleCrossGeneration))
	}

	gen := group.Group("/:generation")
	gen.Get("/game", WithGeneration(h.HandleGame))
	gen.Get("/game/intermediary", WithGeneration(h.HandleIntermediaryGames))
	gen.Get("/game/feather", WithGeneration(h.HandleFeatherGames))
	gen.Get("/intermediary", WithGeneration(h.HandleIntermediary))
	gen.Get("/intermediary/:game_version", WithGeneration(h.HandleIntermediary))
	gen.Get("/feather", WithGeneration(h.HandleFeather))
	gen.Get("/feather/:game_version", WithGeneration(h.HandleFeather))
	for _, lt := range version.LoaderTypes {
		loaders := "/" + lt.Artifact()
		gen.Get(loaders, WithGeneration(withLoader(lt, h.HandleLoaders)))
		gen.Get(loaders+"/:game_version", WithGeneration(withLoader(lt, h.HandleLoaderInfos)))
		gen.Get(loaders+"/:game_version/:loader_version", WithGeneration(withLoader(lt, h.HandleLoaderInfo)))
	}
	gen.Get("/osl", WithGeneration(h.HandleOSL))
	gen.Get("/osl/:version", WithGeneration(h.HandleOSLDependencies))
	gen.Get("/osl/:module/:game_version", WithGeneration(h.HandleOSLModule))
	gen.Get("/osl/:module/:game_version/:base_version", WithGeneration(h.HandleOSLModule))
	gen.Get("/libraries/:game_version", WithGeneration(h.HandleLibraries))
}

// GenerationHandler serves a route below /v3/versions/gen<N>.
type GenerationHandler func(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error

// LoaderHandler serves a route below /v3/versions/gen<N>/<loader>.
type LoaderHandler func(c *fiber.Ctx, snap *snapshot.Snapshot, gen int, lt version.LoaderType) error

// WithGeneration resolves the gen<N> path token against the snapshot pinned
// to the request and answers 404 for generations it does not serve.
func WithGeneration(fn GenerationHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := ready.Snapshot(c)
		token := c.Params("generation")
		gen, err := version.ParseGeneration(token)
		if err != nil || snap == nil || !snap.HasGeneration(gen) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("unknown generation %q", token),
			})
		}
		return fn(c, snap, gen)
	}
}

func withLoader(lt version.LoaderType, fn LoaderHandler) GenerationHandler {
	return func(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
		return fn(c, snap, gen, lt)
	}
}

func (h *Handler) withFamily(family string, fn func(c *fiber.Ctx, entries []version.Version) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, _ := h.service.CrossGeneration(ready.Snapshot(c), family)
		return fn(c, entries)
	}
}

// Param returns the unescaped path parameter name. Game versions such as
// "1.14 Pre-Release 1" arrive percent-encoded.
func Param(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// page writes items honoring the limit and skip query parameters.
func page[T any](c *fiber.Ctx, items []T) error {
	limit, err := utils.ParseNonNegative("limit", c.Query("limit"), 0)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	skip, err := utils.ParseNonNegative("skip", c.Query("skip"), 0)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderCacheControl, listCacheControl)
	return c.JSON(utils.Page(items, limit, skip))
}

// HandleSummary returns the generation bounds and cross-generation lists.
// @Summary Version index summary
// @Description Generation bounds, raven/sparrow/nests, installer builds and library upgrades.
// @Tags versions
// @Produce json
// @Success 200 {object} versions.Summary
// @Failure 503 {object} map[string]string "No snapshot yet"
// @Router /v3/versions [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, listCacheControl)
	return c.JSON(h.service.Summary(ready.Snapshot(c)))
}

// HandleInstaller lists installer builds.
// @Summary Installer builds
// @Tags versions
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Param skip query int false "Entries to skip"
// @Success 200 {array} object
// @Router /v3/versions/installer [get]
func (h *Handler) HandleInstaller(c *fiber.Ctx) error {
	return page(c, ready.Snapshot(c).Installer())
}

// HandleCrossGeneration lists raven, sparrow or nests builds, optionally
// filtered by game version.
// @Summary Cross-generation builds
// @Tags versions
// @Produce json
// @Param family path string true "raven, sparrow or nests"
// @Param game_version path string false "Game version"
// @Param limit query int false "Maximum number of entries"
// @Param skip query int false "Entries to skip"
// @Success 200 {array} object
// @Router /v3/versions/{family}/{game_version} [get]
func (h *Handler) HandleCrossGeneration(c *fiber.Ctx, entries []version.Version) error {
	if gv := Param(c, "game_version"); gv != "" {
		entries = version.Filter(entries, gv)
	}
	return page(c, entries)
}

// HandleCrossGenerationGames lists the game versions a family has builds for.
// @Summary Cross-generation game versions
// @Tags versions
// @Produce json
// @Param family path string true "raven, sparrow or nests"
// @Success 200 {array} version.GameVersion
// @Router /v3/versions/game/{family} [get]
func (h *Handler) HandleCrossGenerationGames(c *fiber.Ctx, entries []version.Version) error {
	return page(c, version.DistinctGames(entries))
}

// HandleGame lists the game versions of a generation.
// @Summary Game versions
// @Tags generation
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Success 200 {array} version.GameVersion
// @Failure 404 {object} map[string]string "Unknown generation"
// @Router /v3/versions/{generation}/game [get]
func (h *Handler) HandleGame(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
	return page(c, snap.Game(gen))
}

// HandleIntermediaryGames lists the game versions with intermediary mappings.
// @Summary Game versions with intermediary
// @Tags generation
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Success 200 {array} version.GameVersion
// @Router /v3/versions/{generation}/game/intermediary [get]
func (h *Handler) HandleIntermediaryGames(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
	return page(c, version.DistinctGames(snap.Intermediary(gen)))
}

// HandleFeatherGames lists the game versions with feather builds.
// @Summary Game versions with feather
// @Tags generation
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Success 200 {array} version.GameVersion
// @Router /v3/versions/{generation}/game/feather [get]
func (h *Handler) HandleFeatherGames(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
	return page(c, version.DistinctGames(snap.Feather(gen)))
}

// HandleIntermediary lists intermediary versions, optionally for one game version.
// @Summary Intermediary versions
// @Tags generation
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Param game_version path string false "Game version"
// @Success 200 {array} object
// @Router /v3/versions/{generation}/intermediary/{game_version} [get]
func (h *Handler) HandleIntermediary(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
	entries := snap.Intermediary(gen)
	if gv := Param(c, "game_version"); gv != "" {
		entries = version.Filter(entries, gv)
	}
	return page(c, entries)
}

// HandleFeather lists feather builds, optionally for one game version.
// @Summary Feather builds
// @Tags generation
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Param game_version path string false "Game version"
// @Param limit query int false "Maximum number of entries"
// @Param skip query int false "Entries to skip"
// @Success 200 {array} object
// @Router /v3/versions/{generation}/feather/{game_version} [get]
func (h *Handler) HandleFeather(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
	entries := snap.Feather(gen)
	if gv := Param(c, "game_version"); gv != "" {
		entries = version.Filter(entries, gv)
	}
	return page(c, entries)
}

// HandleLoaders lists the public builds of a loader.
// @Summary Loader builds
// @Tags loaders
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Param loader path string true "fabric-loader or quilt-loader"
// @Param limit query int false "Maximum number of entries"
// @Param skip query int false "Entries to skip"
// @Success 200 {array} object
// @Router /v3/versions/{generation}/{loader} [get]
func (h *Handler) HandleLoaders(c *fiber.Ctx, snap *snapshot.Snapshot, gen int, lt version.LoaderType) error {
	return page(c, snap.Loaders(gen, lt))
}

// HandleLoaderInfos pairs every public loader build with the game version's
// intermediary.
// @Summary Loader builds for a game version
// @Tags loaders
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Param loader path string true "fabric-loader or quilt-loader"
// @Param game_version path string true "Game version"
// @Success 200 {array} versions.LoaderInfo
// @Router /v3/versions/{generation}/{loader}/{game_version} [get]
func (h *Handler) HandleLoaderInfos(c *fiber.Ctx, snap *snapshot.Snapshot, gen int, lt version.LoaderType) error {
	return page(c, h.service.LoaderInfos(snap, gen, lt, Param(c, "game_version")))
}

// HandleLoaderInfo returns one loader build with its launcher metadata.
// @Summary Loader build for a game version
// @Tags loaders
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Param loader path string true "fabric-loader or quilt-loader"
// @Param game_version path string true "Game version"
// @Param loader_version path string true "Loader version"
// @Success 200 {object} versions.LoaderInfo
// @Failure 400 {string} string "No loader or mappings version found"
// @Failure 502 {object} map[string]string "Launcher metadata unavailable"
// @Router /v3/versions/{generation}/{loader}/{game_version}/{loader_version} [get]
func (h *Handler) HandleLoaderInfo(c *fiber.Ctx, snap *snapshot.Snapshot, gen int, lt version.LoaderType) error {
	info, err := h.service.LoaderInfo(c.UserContext(), snap, gen, lt, Param(c, "game_version"), Param(c, "loader_version"))
	if err != nil {
		return h.loaderError(c, err)
	}
	return c.JSON(info)
}

func (h *Handler) loaderError(c *fiber.Ctx, err error) error {
	return LoaderError(c, h.service.logger, err)
}

// LoaderError answers a failed loader lookup: 400 with a plain text message
// when the loader or mappings version does not exist, 502 otherwise.
func LoaderError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, snapshot.ErrLoaderNotFound) || errors.Is(err, snapshot.ErrIntermediaryNotFound) {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	logger.WithRayID(l, c).Error("Loader info failed", zap.Error(err))
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
}

// HandleOSL lists OSL versions.
// @Summary OSL versions
// @Tags osl
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Success 200 {array} object
// @Router /v3/versions/{generation}/osl [get]
func (h *Handler) HandleOSL(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
	return page(c, snap.OSL(gen))
}

// HandleOSLDependencies lists the module versions an OSL release depends on.
// Unknown releases yield an empty list.
// @Summary OSL release modules
// @Tags osl
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Param version path string true "OSL version"
// @Success 200 {array} object
// @Router /v3/versions/{generation}/osl/{version} [get]
func (h *Handler) HandleOSLDependencies(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
	deps, ok := snap.OSLDependencies(gen, Param(c, "version"))
	if !ok {
		deps = []version.Version{}
	}
	return page(c, deps)
}

// HandleOSLModule lists the versions of an OSL module compatible with a game
// version, optionally restricted to a base version prefix.
// @Summary OSL module versions
// @Tags osl
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Param module path string true "Module name"
// @Param game_version path string true "Game version"
// @Param base_version path string false "Base version prefix"
// @Success 200 {array} object
// @Failure 404 {object} map[string]string "Unknown module"
// @Router /v3/versions/{generation}/osl/{module}/{game_version}/{base_version} [get]
func (h *Handler) HandleOSLModule(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
	module := Param(c, "module")
	versions, ok := snap.ModuleVersions(c.UserContext(), gen, module, Param(c, "game_version"), Param(c, "base_version"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("unknown osl module %q", module),
		})
	}
	return page(c, versions)
}

// HandleLibraries lists the library upgrades applying to a game version.
// @Summary Library upgrades
// @Tags generation
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Param game_version path string true "Game version"
// @Success 200 {array} compat.Library
// @Router /v3/versions/{generation}/libraries/{game_version} [get]
func (h *Handler) HandleLibraries(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
	return page(c, snap.Libraries(c.UserContext(), gen, Param(c, "game_version")))
}
