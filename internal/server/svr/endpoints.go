package svr

import (
	"github.com/gofiber/fiber/v2"
)

// Public serves the unversioned, client facing endpoints.
type Public struct {
	fiber.Router
}

// Meta serves operational endpoints under /api/_.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*Public, *Meta) {
	public := app.Group("/")
	meta := app.Group("/api/_")

	return &Public{Router: public}, &Meta{Router: meta}
}
