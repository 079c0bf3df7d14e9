package system

import (
	"net/http/httptest"
	"testing"

	"pantrypal/core/database"
	"pantrypal/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(server.DefaultInfo, "development", database.Pool{}, zap.NewNop())

	assert.Equal(t, "system", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
