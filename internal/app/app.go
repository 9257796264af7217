package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/pluginseq/internal/config"
	"github.com/vk/pluginseq/internal/ctxlog"
	"github.com/vk/pluginseq/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	model    *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// If no modules are given, the built-in core modules are registered.
func NewApp(outW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loadModel(ctx, appConfig.SettingsPath)
	if err != nil {
		// A failure to load settings is a fatal startup error.
		panic(fmt.Errorf("failed to load settings: %w", err))
	}
	logger.Debug("Settings loaded and translated into unified model.", "themes", len(model.Themes))

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All plugin modules registered.", "count", len(modules))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		model:    model,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded settings model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
