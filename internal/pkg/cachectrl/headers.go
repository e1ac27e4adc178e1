package cachectrl

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DefaultMaxAge is how long clients may reuse a response that never changes
// for the life of the process.
const DefaultMaxAge = time.Hour

func OptIn(ctx *fiber.Ctx, t time.Time) {
	OptInCustom(ctx, t, DefaultMaxAge)
}

func OptInCustom(ctx *fiber.Ctx, t time.Time, offset time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(offset.Seconds())))
	ctx.Set(fiber.HeaderExpires, time.Now().Add(offset).UTC().Format(http.TimeFormat))

	ctx.Response().Header.SetLastModified(t)
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}
