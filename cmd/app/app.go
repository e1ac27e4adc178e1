package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/collectionlog/backend/cmd/app/cli/drops"
	"github.com/collectionlog/backend/cmd/app/server"
	"github.com/collectionlog/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        bininfo.Name,
		Usage:       "collection log drop source backend",
		Description: "Builds per-item drop source lists from wiki drop tables and curated overrides, and serves them over HTTP. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			drops.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
