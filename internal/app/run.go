package app

import (
	"context"

	"github.com/vk/traitcast"
	"github.com/vk/traitcast/internal/ctxlog"
)

// Run executes the main inspector logic: it forces the one-shot cast table
// build, validates the table against the loaded manifests, and prints the
// table report.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// The first snapshot triggers the lazy build.
	regs := traitcast.Registrations()
	a.logger.Info("Cast table built.", "registrations", len(regs))

	if a.model != nil {
		if err := Validate(ctx, a.model, regs); err != nil {
			return err
		}
		a.logger.Info("Manifest validation passed.", "declared_types", len(a.model.Casts))
	}

	a.report(regs)
	a.logger.Debug("App.Run method finished.")
	return nil
}
