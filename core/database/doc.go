// Package database handles the optional database connection pool.
//
// It wraps GORM to open a pool for PostgreSQL (the PantryPal default), MySQL or
// SQLite based on the application's configuration, and reports the pool's
// reachability to the health endpoints.
//
// # Connect
//
// Connect opens the pool, applies pool limits and pings it with the configured
// timeout. The connection is optional: the start command logs a warning and
// keeps serving when it fails, and /health reports "not_connected".
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database connection failed", zap.Error(err))
//	}
//	status := database.Status(ctx, db)
package database
