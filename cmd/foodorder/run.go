package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// run starts the application, blocks until ctx is cancelled or fx asks to
// shut down, then stops it within fx's stop timeout.
func run(ctx context.Context, app *fx.App) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start foodorder: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop foodorder: %w", err)
	}
	return nil
}
