// Package flog provides a set of fiber.Ctx helpers for zerolog.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const evtNameKey = "evt.name"

// FromFiberCtx gets the logger in the request's context.
func FromFiberCtx(ctx *fiber.Ctx) *zerolog.Logger {
	return log.Ctx(ctx.UserContext())
}

// NewHandlerMiddleware injects a copy of l into every request's user context.
func NewHandlerMiddleware(l zerolog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// copy the logger, including its context slice, so UpdateContext
		// below never races between requests
		rl := l.With().Logger()
		ctx.SetUserContext(rl.WithContext(ctx.UserContext()))
		return ctx.Next()
	}
}

// FieldFunc extracts a request attribute to be added to the request logger.
type FieldFunc func(ctx *fiber.Ctx) string

func RemoteAddr(ctx *fiber.Ctx) string { return ctx.IP() }
func Method(ctx *fiber.Ctx) string     { return ctx.Method() }
func URL(ctx *fiber.Ctx) string        { return ctx.OriginalURL() }
func UserAgent(ctx *fiber.Ctx) string  { return ctx.Get(fiber.HeaderUserAgent) }

// FieldsHandler adds every field of fields to the request logger in a single
// context update.
func FieldsHandler(fields map[string]FieldFunc) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		l := zerolog.Ctx(ctx.UserContext())
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			for key, f := range fields {
				c = c.Str(key, f(ctx))
			}
			return c
		})
		return ctx.Next()
	}
}

type idKey struct{}

// IDFromFiberCtx returns the request id associated to the *fiber.Ctx if any.
func IDFromFiberCtx(ctx *fiber.Ctx) (id xid.ID, ok bool) {
	if ctx == nil {
		return
	}
	return IDFromCtx(ctx.UserContext())
}

// IDFromCtx returns the request id associated to the context if any.
func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

// CtxWithID adds the given xid.ID to the context
func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// RequestIDHandler assigns a xid to each request, adds it to the request
// logger under fieldKey and echoes it in headerName when not empty.
func RequestIDHandler(fieldKey, headerName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, ok := IDFromFiberCtx(ctx)
		if !ok {
			id = xid.New()
			ctx.SetUserContext(CtxWithID(ctx.UserContext(), id))
		}
		if fieldKey != "" {
			FromFiberCtx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str(fieldKey, id.String())
			})
		}
		if headerName != "" {
			ctx.Set(headerName, id.String())
		}
		return ctx.Next()
	}
}

// AccessHandler returns a handler that call f after each request.
func AccessHandler(f func(ctx *fiber.Ctx, err error, duration time.Duration)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		f(ctx, err, time.Since(start))
		return err
	}
}

// Logger Level Method Helpers. evtName is recorded as the evt.name field.

func DebugFrom(ctx *fiber.Ctx, evtName string) *zerolog.Event {
	return FromFiberCtx(ctx).Debug().Str(evtNameKey, evtName)
}

func InfoFrom(ctx *fiber.Ctx, evtName string) *zerolog.Event {
	return FromFiberCtx(ctx).Info().Str(evtNameKey, evtName)
}

func WarnFrom(ctx *fiber.Ctx, evtName string) *zerolog.Event {
	return FromFiberCtx(ctx).Warn().Str(evtNameKey, evtName)
}

func ErrorFrom(ctx *fiber.Ctx, evtName string) *zerolog.Event {
	return FromFiberCtx(ctx).Error().Str(evtNameKey, evtName)
}
