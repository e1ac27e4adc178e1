package drops

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/collectionlog/backend/internal/pkg/apierr"
	"github.com/collectionlog/backend/internal/pkg/cachectrl"
	"github.com/collectionlog/backend/internal/pkg/flog"
	"github.com/collectionlog/backend/internal/server/svr"
	"github.com/collectionlog/backend/internal/service"
	"github.com/collectionlog/backend/internal/util/rekuest"
)

type ItemDrops struct {
	fx.In

	ItemDropsService *service.ItemDrops
}

func RegisterItemDrops(public *svr.Public, c ItemDrops) {
	public.Get("/item-drops", c.GetItemDrops)
}

// GetItemDrops accepts the item id as ?itemId= or its alias ?id=.
func (c *ItemDrops) GetItemDrops(ctx *fiber.Ctx) error {
	raw := ctx.Query("itemId")
	if raw == "" {
		raw = ctx.Query("id")
	}

	itemID, err := rekuest.ValidItemID(raw)
	if err != nil {
		return err
	}

	resp, err := c.ItemDropsService.GetItemDrops(ctx.UserContext(), itemID)
	if err != nil {
		flog.ErrorFrom(ctx, "controller.item_drops.get").
			Err(err).
			Int("itemId", itemID).
			Msg("failed to build item drops")
		return apierr.ErrFetchItemDrops
	}

	cachectrl.OptIn(ctx, resp.CachedAt)
	if resp.Fingerprint != "" {
		etag := `"` + resp.Fingerprint + `"`
		ctx.Set(fiber.HeaderETag, etag)
		if ctx.Get(fiber.HeaderIfNoneMatch) == etag {
			ctx.Status(fiber.StatusNotModified)
			return nil
		}
	}
	return ctx.JSON(resp)
}
