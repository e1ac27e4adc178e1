package controller

import (
	"go.uber.org/fx"

	controllerdrops "github.com/collectionlog/backend/internal/controller/drops"
	controllermeta "github.com/collectionlog/backend/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (drops)
		controllerdrops.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
