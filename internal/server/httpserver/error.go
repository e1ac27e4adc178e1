package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/collectionlog/backend/internal/pkg/apierr"
)

func handleCustomError(ctx *fiber.Ctx, e *apierr.Error) error {
	log.Debug().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	return ctx.Status(e.StatusCode).JSON(fiber.Map{
		"error": e.Message,
	})
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		if ae.StatusCode >= fiber.StatusInternalServerError {
			capture(ctx, err, ae.StatusCode)
		}
		return handleCustomError(ctx, ae)
	}

	// Default 500 statuscode
	re := apierr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		// fiber errors (404, 405...) are rendered with their own message
		if fe.Code == fiber.StatusNotFound {
			re = apierr.ErrNotFound.Msg("%s", fe.Message)
		} else {
			re = apierr.New(fe.Code, "UNKNOWN_ERROR", fe.Message)
		}
		if fe.Code < fiber.StatusInternalServerError {
			return handleCustomError(ctx, re)
		}
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	capture(ctx, err, re.StatusCode)

	return handleCustomError(ctx, re)
}

func capture(ctx *fiber.Ctx, err error, status int) {
	hub := fibersentry.GetHubFromContext(ctx)
	if hub == nil {
		return
	}
	hub.Scope().SetTag("status", strconv.Itoa(status))
	hub.CaptureException(err)
}
