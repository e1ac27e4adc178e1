package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/collectionlog/backend/internal/constant"
	"github.com/collectionlog/backend/internal/pkg/flog"
)

// RequestID copies the request id set by the logger middleware into Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
