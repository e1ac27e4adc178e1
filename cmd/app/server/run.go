package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/collectionlog/backend/internal/app"
	"github.com/collectionlog/backend/internal/app/appconfig"
	"github.com/collectionlog/backend/internal/app/appcontext"
)

// Run starts the HTTP server and blocks until SIGINT or SIGTERM.
func Run() {
	app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(listen)).Run()
}

func listen(serviceApp *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			log.Info().
				Str("evt.name", "server.listen").
				Str("address", ln.Addr().String()).
				Msg("server listening")

			go func() {
				if err := serviceApp.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Str("evt.name", "server.shutdown").Msg("shutting down server")
			return serviceApp.ShutdownWithContext(ctx)
		},
	})
}
