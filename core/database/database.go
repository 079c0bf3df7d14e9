package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connection status values reported by /health.
const (
	StatusNotConnected = "not_connected"
	StatusConnected    = "connected"
	StatusUnreachable  = "unreachable"
)

// ErrNotConnected is returned by checks run without a database.
var ErrNotConnected = errors.New("database is not connected")

// Connect opens the connection pool for the configured driver and verifies it with a ping.
// This is an optional connection, so callers should handle the error gracefully.
func Connect(cfg Config) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 5
	}

	dialector, err := dialectorFor(cfg, timeout)
	if err != nil {
		return nil, err
	}

	// Suppress GORM logging; connection problems surface through the main logger
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func dialectorFor(cfg Config, timeout int) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverPostgres:
		dsn := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Path:   "/" + cfg.Name,
		}
		q := dsn.Query()
		q.Set("sslmode", cfg.SSLMode)
		q.Set("connect_timeout", fmt.Sprint(timeout))
		dsn.RawQuery = q.Encode()
		return postgres.Open(dsn.String()), nil
	case DriverMySQL:
		// Special characters in the password must be URL encoded for the mysql driver
		userInfo := url.UserPassword(cfg.User, cfg.Password).String()
		dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
			userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(cfg.Name), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Ping verifies the pool can reach the database.
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return ErrNotConnected
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Status describes the connection for the health endpoint.
func Status(ctx context.Context, db *gorm.DB) string {
	if db == nil {
		return StatusNotConnected
	}
	if err := Ping(ctx, db); err != nil {
		return StatusUnreachable
	}
	return StatusConnected
}

// Pool is the database as configured: Enabled with a nil DB means the
// connection was attempted and failed.
type Pool struct {
	Enabled bool
	DB      *gorm.DB
}

// Status describes the pool for the health endpoint. A disabled pool is
// not_connected; an enabled pool that never connected is unreachable.
func (p Pool) Status(ctx context.Context) string {
	if !p.Enabled {
		return StatusNotConnected
	}
	if p.DB == nil {
		return StatusUnreachable
	}
	return Status(ctx, p.DB)
}

// Close releases the connection pool. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Checker adapts a connection pool to health.Checker.
type Checker struct {
	db *gorm.DB
}

// NewChecker creates a readiness checker for the pool.
func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// Name implements health.Checker.
func (c *Checker) Name() string {
	return "database"
}

// Check implements health.Checker.
func (c *Checker) Check(ctx context.Context) error {
	return Ping(ctx, c.db)
}
