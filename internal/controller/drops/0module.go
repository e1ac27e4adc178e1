package drops

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("controllers.drops", fx.Invoke(
		RegisterItemDrops,
	))
}
