package system

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pantrypal/core/database"
	"pantrypal/core/health"
	"pantrypal/core/server"
	"pantrypal/core/storage"
	"pantrypal/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupTestApp(pool database.Pool, environment string, checkers ...health.Checker) *fiber.App {
	app := fiber.New()
	handler := NewHandler(NewService(server.DefaultInfo, environment, pool, zap.NewNop(), checkers...))
	handler.RegisterRoutes(app)
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleRoot(t *testing.T) {
	app := setupTestApp(database.Pool{}, "development")

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, map[string]any{
		"name":    "PantryPal API",
		"version": "0.1.0",
		"status":  "running",
		"docs":    "/docs",
	}, decode(t, resp))
}

func TestHandleHealth(t *testing.T) {
	t.Run("NoDatabase", func(t *testing.T) {
		app := setupTestApp(database.Pool{}, "development")

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, map[string]any{
			"status":      "healthy",
			"database":    "not_connected",
			"environment": "development",
		}, decode(t, resp))
	})

	t.Run("Connected", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectPing()
		app := setupTestApp(database.Pool{Enabled: true, DB: db}, "production")

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)

		body := decode(t, resp)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, database.StatusConnected, body["database"])
		assert.Equal(t, "production", body["environment"])
	})

	t.Run("EnabledButNeverConnected", func(t *testing.T) {
		app := setupTestApp(database.Pool{Enabled: true}, "development")

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, map[string]any{
			"status":      "healthy",
			"database":    "unreachable",
			"environment": "development",
		}, decode(t, resp))
	})

	t.Run("Unreachable", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectPing().WillReturnError(assert.AnError)
		app := setupTestApp(database.Pool{Enabled: true, DB: db}, "staging")

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)

		body := decode(t, resp)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, database.StatusUnreachable, body["database"])
	})
}

func TestHandleReadiness(t *testing.T) {
	t.Run("NoDependencies", func(t *testing.T) {
		app := setupTestApp(database.Pool{}, "development")

		resp, err := app.Test(httptest.NewRequest("GET", "/health/ready", nil))
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, health.StatusReady, decode(t, resp)["status"])
	})

	t.Run("StorageUp", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "pantrypal").Return(true, nil)
		app := setupTestApp(database.Pool{}, "development", storage.NewChecker(mockClient, "pantrypal"))

		resp, err := app.Test(httptest.NewRequest("GET", "/health/ready", nil))
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		body := decode(t, resp)
		assert.Equal(t, map[string]any{"status": "up"}, body["checks"].(map[string]any)["storage"])
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "pantrypal").Return(true, nil)
		app := setupTestApp(database.Pool{}, "development",
			database.NewChecker(nil),
			storage.NewChecker(mockClient, "pantrypal"),
		)

		resp, err := app.Test(httptest.NewRequest("GET", "/health/ready", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		body := decode(t, resp)
		assert.Equal(t, health.StatusNotReady, body["status"])
		checks := body["checks"].(map[string]any)
		assert.Equal(t, map[string]any{"status": "down", "error": "database is not connected"}, checks["database"])
		assert.Equal(t, map[string]any{"status": "up"}, checks["storage"])
	})
}
