package cors_test

import (
	"net/http/httptest"
	"testing"

	"pantrypal/core/middleware/cors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(origins ...string) *fiber.App {
	app := fiber.New()
	app.Use(cors.New(origins))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestNew_AllowedOrigin(t *testing.T) {
	app := setupApp("http://a.test", "http://b.test")

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://a.test")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "http://a.test", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestNew_DisallowedOrigin(t *testing.T) {
	app := setupApp("http://a.test", "http://b.test")

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://evil.test")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestNew_Preflight(t *testing.T) {
	app := setupApp("http://b.test")

	req := httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "http://b.test")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://b.test", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "DELETE")
	assert.Equal(t, "X-Custom-Header", resp.Header.Get("Access-Control-Allow-Headers"))
}
