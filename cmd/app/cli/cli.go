package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/collectionlog/backend/internal/app"
	"github.com/collectionlog/backend/internal/app/appcontext"
)

// Start builds the application graph for a one-shot command. The HTTP server
// is constructed but never listens.
func Start(ctx context.Context, module fx.Option) (stop func() error, err error) {
	fxApp := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := fxApp.Start(ctx); err != nil {
		return nil, err
	}

	return func() error {
		return fxApp.Stop(context.Background())
	}, nil
}

// DepsFn returns a function populating T from the application graph.
func DepsFn[T any](ctx context.Context) (T, func() error, error) {
	var deps T
	stop, err := Start(ctx, fx.Populate(&deps))
	return deps, stop, err
}
