package drops

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/collectionlog/backend/cmd/app/cli"
	"github.com/collectionlog/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	ItemDropsService *service.ItemDrops
}

func Command() *cli.Command {
	return &cli.Command{
		Name:      "drops",
		Usage:     "build the drop sources of one item and print them",
		UsageText: "drops --item-id 1234 [--json] [--profile]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "item-id",
				Aliases:  []string{"i"},
				Usage:    "item id as known by the item mapping",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the API response instead of a table",
			},
			&cli.BoolFlag{
				Name:  "profile",
				Usage: "serve fgprof on 127.0.0.1:6060/debug/fgprof while running",
			},
		},
		Action: func(c *cli.Context) error {
			deps, stop, err := cliapp.DepsFn[CommandDeps](c.Context)
			if err != nil {
				return err
			}
			defer func() { _ = stop() }()

			return run(c, deps)
		},
	}
}
