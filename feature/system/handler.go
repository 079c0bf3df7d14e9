package system

import (
	"pantrypal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the system endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the system routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleRoot)
	app.Get("/health", h.HandleHealth)
	app.Get("/health/ready", h.HandleReadiness)
}

// HandleRoot returns the API identity.
// @Summary API Status
// @Description Returns the API name, version, status and documentation path.
// @Tags system
// @Produce json
// @Success 200 {object} system.RootResponse
// @Router / [get]
func (h *Handler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(h.service.Root())
}

// HandleHealth returns the liveness report.
// @Summary Health Check
// @Description Reports service health, database connection state and environment.
// @Tags system
// @Produce json
// @Success 200 {object} system.HealthResponse
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(h.service.Health(c.UserContext()))
}

// HandleReadiness checks every configured dependency.
// @Summary Readiness Check
// @Description Checks every configured dependency (database, storage).
// @Tags system
// @Produce json
// @Success 200 {object} health.Report "Ready"
// @Failure 503 {object} health.Report "Not Ready"
// @Router /health/ready [get]
func (h *Handler) HandleReadiness(c *fiber.Ctx) error {
	report := h.service.Readiness(c.UserContext())
	if !report.Ready() {
		logger.WithRayID(h.service.logger, c).Warn("Readiness check failed", zap.Any("checks", report.Checks))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
