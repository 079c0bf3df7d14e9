package system

import (
	"pantrypal/core/database"
	"pantrypal/core/health"
	"pantrypal/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature mounts the root and health endpoints.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the system feature.
func NewFeature(info server.Info, environment string, pool database.Pool, logger *zap.Logger, checkers ...health.Checker) *Feature {
	svc := NewService(info, environment, pool, logger, checkers...)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "system"
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
