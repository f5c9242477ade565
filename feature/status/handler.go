package status

import (
	"github.com/gofiber/fiber/v2"
)

// Handler handles health requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

// HandleHealth reports refresher and upstream health.
// @Summary Service health
// @Description Refresher state, snapshot age and upstream circuit breakers.
// @Tags status
// @Produce json
// @Success 200 {object} status.Report
// @Failure 503 {object} status.Report "No snapshot published yet"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report := h.service.Report()
	c.Set(fiber.HeaderCacheControl, "no-store")
	if report.Snapshot == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
