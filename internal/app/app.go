package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/traitcast/internal/config"
	"github.com/vk/traitcast/internal/ctxlog"
)

// App encapsulates the inspector's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model
}

// NewApp is the constructor for the inspector application. It builds an
// isolated logger and, when a manifest path is configured, loads the cast
// manifests through the provided loader. A manifest that fails to load is a
// fatal startup error.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var model *config.Model
	if appConfig.ManifestPath != "" {
		m, err := loader.Load(ctx, appConfig.ManifestPath)
		if err != nil {
			panic(fmt.Errorf("failed to load manifests: %w", err))
		}
		model = m
		logger.Debug("Manifests loaded and translated into unified model.")
	}

	return &App{
		outW:   outW,
		logger: logger,
		model:  model,
	}
}

// Model returns the loaded manifest model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
