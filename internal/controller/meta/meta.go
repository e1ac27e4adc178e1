package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/collectionlog/backend/internal/pkg/bininfo"
	"github.com/collectionlog/backend/internal/pkg/cachectrl"
	"github.com/collectionlog/backend/internal/server/svr"
	"github.com/collectionlog/backend/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"name":    bininfo.Name,
		"version": bininfo.Version,
		"commit":  bininfo.Commit,
		"build":   bininfo.BuildTime,
	})
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)
	return ctx.JSON(c.HealthService.Status())
}
