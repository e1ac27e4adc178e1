package meta

import (
	"github.com/gofiber/fiber/v2"

	"github.com/collectionlog/backend/internal/pkg/bininfo"
)

func RegisterIndex(app *fiber.App) {
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Collection log drop source API",
			"version": bininfo.Version,
			"endpoints": []string{
				"/item-drops?itemId={itemId}",
				"/api/_/health",
				"/api/_/bininfo",
				"/metrics",
			},
		})
	})
}
