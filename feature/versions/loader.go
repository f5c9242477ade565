package versions

import (
	"ornithe-meta/core/middleware/ready"
	"ornithe-meta/core/snapshot"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the versions feature.
func NewFeature(store ready.Source, launcher LauncherSource, cfg snapshot.Config, logger *zap.Logger) *Feature {
	svc := NewService(launcher, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc, store)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "versions"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
