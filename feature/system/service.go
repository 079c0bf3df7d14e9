package system

import (
	"context"
	"time"

	"pantrypal/core/database"
	"pantrypal/core/health"
	"pantrypal/core/server"

	"go.uber.org/zap"
)

// Status values reported by the informational endpoints.
const (
	StatusRunning = "running"
	StatusHealthy = "healthy"
)

// CheckTimeout bounds every dependency check made while answering a request.
const CheckTimeout = 2 * time.Second

// RootResponse is the body of GET /.
type RootResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Docs    string `json:"docs"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Environment string `json:"environment"`
}

// Service answers the system endpoints.
type Service struct {
	info        server.Info
	environment string
	pool        database.Pool
	checkers    []health.Checker
	logger      *zap.Logger
}

// NewService creates a new system service.
func NewService(info server.Info, environment string, pool database.Pool, logger *zap.Logger, checkers ...health.Checker) *Service {
	return &Service{
		info:        info,
		environment: environment,
		pool:        pool,
		checkers:    checkers,
		logger:      logger,
	}
}

// Root returns the API identity.
func (s *Service) Root() RootResponse {
	return RootResponse{
		Name:    s.info.Name,
		Version: s.info.Version,
		Status:  StatusRunning,
		Docs:    s.info.DocsPath,
	}
}

// Health reports liveness. It always succeeds; the database field is informational.
func (s *Service) Health(ctx context.Context) HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, CheckTimeout)
	defer cancel()

	return HealthResponse{
		Status:      StatusHealthy,
		Database:    s.pool.Status(ctx),
		Environment: s.environment,
	}
}

// Readiness checks every registered dependency.
func (s *Service) Readiness(ctx context.Context) health.Report {
	return health.Run(ctx, CheckTimeout, s.checkers...)
}
