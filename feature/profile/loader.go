package profile

import (
	"ornithe-meta/core/middleware/ready"
	"ornithe-meta/core/snapshot"
	"ornithe-meta/feature/versions"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the profile feature.
func NewFeature(store ready.Source, launcher versions.LauncherSource, cfg snapshot.Config, logger *zap.Logger) *Feature {
	svc := NewService(versions.NewService(launcher, cfg, logger), cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc, store)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "profile"
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
