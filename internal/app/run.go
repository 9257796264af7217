package app

import (
	"context"
	"fmt"

	"github.com/vk/pluginseq/internal/ctxlog"
	"github.com/vk/pluginseq/internal/pipeline"
	"github.com/vk/pluginseq/internal/plugin"
	"github.com/vk/pluginseq/internal/sequence"
)

// Run resolves the plugin execution order from the loaded settings and, in a
// normal run, drives the content pipeline through it. In dry-run mode the
// order and any diagnostics are printed instead.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	resolver := sequence.New()
	for _, theme := range a.model.Themes {
		if !theme.Enabled {
			a.logger.Debug("Skipping disabled theme.", "theme", theme.Name)
			continue
		}
		resolver.Analyze(theme.Name, theme.Sequence)
	}

	diags := resolver.Diagnostics()
	for _, line := range diags.Report() {
		a.logger.Warn("Directive diagnostic.", "detail", line)
	}

	order, err := resolver.Sequence()
	if err != nil {
		return fmt.Errorf("failed to resolve plugin order: %w", err)
	}
	a.logger.Info("Plugin order resolved.", "plugins", len(order), "had_errors", diags.HadErrors())

	if a.config.DryRun {
		for _, id := range order {
			fmt.Fprintln(a.outW, id.String())
		}
		for _, line := range diags.Report() {
			fmt.Fprintf(a.outW, "# %s\n", line)
		}
		return nil
	}

	store := plugin.NewStore()
	store.SetOptions("", map[string]string{
		"source": a.config.Source,
		"output": a.config.Output,
	})
	for _, theme := range a.model.Themes {
		if theme.Options != nil {
			store.SetOptions(theme.Name, theme.Options)
		}
	}

	runner := pipeline.New(a.registry, store)
	if a.config.Command != "" {
		if err := runner.RunCommand(ctx, order, []string{a.config.Command}); err != nil {
			return fmt.Errorf("command dispatch failed: %w", err)
		}
	}
	if err := runner.Run(ctx, order); err != nil {
		return fmt.Errorf("pipeline execution failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
