package rayid

import (
	"pantrypal/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the request/response header carrying the ray id.
const HeaderName = "X-Ray-ID"

// New returns a middleware that tags every request with a ray id.
// An incoming X-Ray-ID is kept so traces can span services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

// FromContext returns the ray id of the current request, if any.
func FromContext(c *fiber.Ctx) string {
	rid, _ := c.Locals(logger.RayIDKey).(string)
	return rid
}
