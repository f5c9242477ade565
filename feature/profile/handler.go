package profile

import (
	"encoding/json"
	"fmt"

	"ornithe-meta/core/logger"
	"ornithe-meta/core/middleware/ready"
	"ornithe-meta/core/snapshot"
	"ornithe-meta/core/version"
	"ornithe-meta/feature/versions"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const downloadCacheControl = "public, max-age=86400"

// Handler handles profile downloads.
type Handler struct {
	service *Service
	store   ready.Source
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, store ready.Source) *Handler {
	return &Handler{service: service, store: store}
}

// RegisterRoutes registers the profile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/v3/versions", ready.New(h.store))
	for _, lt := range version.LoaderTypes {
		base := "/:generation/" + lt.Artifact() + "/:game_version/:loader_version"
		group.Get(base+"/profile/json", versions.WithGeneration(h.profileJSON(lt, SideClient)))
		group.Get(base+"/profile/zip", versions.WithGeneration(h.profileZip(lt)))
		group.Get(base+"/server/json", versions.WithGeneration(h.profileJSON(lt, SideServer)))
	}
}

// HandleProfileJSON returns the launcher profile of a loader build.
// @Summary Launcher profile
// @Description Client profile (profile/json) or server profile (server/json) of a loader build.
// @Tags profile
// @Produce json
// @Param generation path string true "Generation, e.g. gen2"
// @Param loader path string true "fabric-loader or quilt-loader"
// @Param game_version path string true "Game version"
// @Param loader_version path string true "Loader version"
// @Success 200 {object} profile.Profile
// @Failure 400 {string} string "No loader or mappings version found"
// @Failure 502 {object} map[string]string "Launcher metadata unavailable"
// @Router /v3/versions/{generation}/{loader}/{game_version}/{loader_version}/profile/json [get]
func (h *Handler) HandleProfileJSON(c *fiber.Ctx, snap *snapshot.Snapshot, gen int, lt version.LoaderType, side string) error {
	p, _, err := h.service.Build(c.UserContext(), snap, gen, lt, versions.Param(c, "game_version"), versions.Param(c, "loader_version"), side)
	if err != nil {
		return versions.LoaderError(c, h.service.logger, err)
	}
	c.Set(fiber.HeaderCacheControl, downloadCacheControl)
	return c.JSON(p)
}

// HandleProfileZip returns the client profile packaged for launcher import.
// @Summary Launcher profile archive
// @Tags profile
// @Produce application/zip
// @Param generation path string true "Generation, e.g. gen2"
// @Param loader path string true "fabric-loader or quilt-loader"
// @Param game_version path string true "Game version"
// @Param loader_version path string true "Loader version"
// @Success 200 {file} file
// @Failure 400 {string} string "No loader or mappings version found"
// @Router /v3/versions/{generation}/{loader}/{game_version}/{loader_version}/profile/zip [get]
func (h *Handler) HandleProfileZip(c *fiber.Ctx, snap *snapshot.Snapshot, gen int, lt version.LoaderType) error {
	l := logger.WithRayID(h.service.logger, c)

	p, info, err := h.service.Build(c.UserContext(), snap, gen, lt, versions.Param(c, "game_version"), versions.Param(c, "loader_version"), SideClient)
	if err != nil {
		return versions.LoaderError(c, h.service.logger, err)
	}
	body, err := json.Marshal(p)
	if err != nil {
		l.Error("Encoding profile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	name := ArchiveName(gen, info)
	archive, err := Zip(name, body)
	if err != nil {
		l.Error("Packaging profile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name+".zip"))
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderCacheControl, downloadCacheControl)
	return c.Send(archive)
}

func (h *Handler) profileJSON(lt version.LoaderType, side string) versions.GenerationHandler {
	return func(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
		return h.HandleProfileJSON(c, snap, gen, lt, side)
	}
}

func (h *Handler) profileZip(lt version.LoaderType) versions.GenerationHandler {
	return func(c *fiber.Ctx, snap *snapshot.Snapshot, gen int) error {
		return h.HandleProfileZip(c, snap, gen, lt)
	}
}
