package server

import (
	"fmt"
	"html"

	_ "pantrypal/docs/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const redocPage = `<!DOCTYPE html>
<html>
  <head>
    <title>%s - ReDoc</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>body { margin: 0; padding: 0; }</style>
  </head>
  <body>
    <redoc spec-url="%s"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
  </body>
</html>
`

// mountDocs serves Swagger UI under DocsPath and a ReDoc page over the same spec at RedocPath.
func (s *Server) mountDocs() {
	s.app.Get(s.info.DocsPath, func(c *fiber.Ctx) error {
		return c.Redirect(s.info.DocsPath+"/index.html", fiber.StatusMovedPermanently)
	})
	s.app.Get(s.info.DocsPath+"/*", swagger.HandlerDefault)

	page := fmt.Sprintf(redocPage,
		html.EscapeString(s.info.Name),
		html.EscapeString(s.info.DocsPath+"/doc.json"),
	)
	s.app.Get(s.info.RedocPath, func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(page)
	})
}
