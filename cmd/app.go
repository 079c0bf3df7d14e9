package cmd

import (
	"errors"
	"fmt"

	"pantrypal/core/config"
	"pantrypal/core/database"
	"pantrypal/core/health"
	"pantrypal/core/server"
	"pantrypal/core/storage"
	"pantrypal/feature/system"

	"go.uber.org/zap"
)

// dependencies are the optional external resources the service runs with.
type dependencies struct {
	db       database.Pool
	store    storage.Client
	checkers []health.Checker
}

// connectDependencies acquires the enabled resources. A failed database connection
// is logged and tolerated; an invalid storage configuration is not.
func connectDependencies(cfg *config.Config, logg *zap.Logger) (*dependencies, error) {
	deps := &dependencies{db: database.Pool{Enabled: cfg.Database.Enabled}}

	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			deps.db.DB = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}
		deps.checkers = append(deps.checkers, database.NewChecker(deps.db.DB))
	}

	if cfg.Storage.Enabled {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, errors.Join(err, deps.close())
		}
		deps.store = store
		deps.checkers = append(deps.checkers, storage.NewChecker(store, cfg.Storage.Bucket))
	}

	return deps, nil
}

func (d *dependencies) close() error {
	return database.Close(d.db.DB)
}

// newServer builds the HTTP server, mounts the features and hands the
// dependencies over to it for release on Stop.
func newServer(cfg *config.Config, logg *zap.Logger, deps *dependencies) (*server.Server, error) {
	srv := server.New(server.Options{
		Config:      cfg.Server,
		Info:        server.DefaultInfo,
		Environment: cfg.Environment,
		Origins:     cfg.Origins(),
		Logger:      logg,
	})

	if err := srv.Load(
		system.NewFeature(server.DefaultInfo, cfg.Environment, deps.db, logg, deps.checkers...),
	); err != nil {
		return nil, fmt.Errorf("failed to load features: %w", errors.Join(err, deps.close()))
	}

	srv.OnStop("database", deps.close)
	return srv, nil
}
