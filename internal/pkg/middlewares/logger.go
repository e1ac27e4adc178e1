package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/collectionlog/backend/internal/constant"
	"github.com/collectionlog/backend/internal/pkg/apierr"
	"github.com/collectionlog/backend/internal/pkg/flog"
)

func Chained(app *fiber.App, middlewares ...fiber.Handler) {
	for _, middleware := range middlewares {
		app.Use(middleware)
	}
}

func Logger(app *fiber.App) {
	Chained(
		app,
		flog.NewHandlerMiddleware(log.With().Logger()),
		flog.RequestIDHandler("request_id", constant.RequestIDHeader),
		flog.FieldsHandler(map[string]flog.FieldFunc{
			"ip":         flog.RemoteAddr,
			"method":     flog.Method,
			"url":        flog.URL,
			"user_agent": flog.UserAgent,
		}),
		requestLogger(),
	)
}

func requestLogger() fiber.Handler {
	return flog.AccessHandler(func(ctx *fiber.Ctx, err error, duration time.Duration) {
		status := ctx.Response().StatusCode()
		switch e := err.(type) {
		case *apierr.Error:
			status = e.StatusCode
		case *fiber.Error:
			status = e.Code
		}

		level := zerolog.InfoLevel
		if status >= fiber.StatusInternalServerError {
			level = zerolog.WarnLevel
		}

		flog.FromFiberCtx(ctx).WithLevel(level).
			Str("component", "httpreq").
			Int("status", status).
			Int("size", len(ctx.Response().Body())).
			Dur("duration", duration).
			Msg("received request")
	})
}
