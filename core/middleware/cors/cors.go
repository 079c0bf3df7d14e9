package cors

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	fibercors "github.com/gofiber/fiber/v2/middleware/cors"
)

// AllowedMethods lists every method a cross-origin client may use.
var AllowedMethods = []string{
	fiber.MethodGet,
	fiber.MethodPost,
	fiber.MethodHead,
	fiber.MethodPut,
	fiber.MethodDelete,
	fiber.MethodPatch,
	fiber.MethodOptions,
}

// New returns a credentialed CORS middleware restricted to the given origins.
// Origins are compared verbatim against the request's Origin header.
// Request headers are reflected back, so any header is allowed.
func New(origins []string) fiber.Handler {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}

	return fibercors.New(fibercors.Config{
		AllowOriginsFunc: func(origin string) bool {
			_, ok := allowed[origin]
			return ok
		},
		AllowMethods:     strings.Join(AllowedMethods, ","),
		AllowCredentials: true,
	})
}
