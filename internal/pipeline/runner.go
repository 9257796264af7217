// Package pipeline invokes registered plugins in the resolved execution
// order, stage by stage. It is the consumer side of the resolver's output:
// the order says when a plugin runs, the registry says what runs, and the
// store carries the content between them.
package pipeline

import (
	"context"
	"fmt"

	"github.com/vk/pluginseq/internal/ctxlog"
	"github.com/vk/pluginseq/internal/plugin"
	"github.com/vk/pluginseq/internal/registry"
	"github.com/vk/pluginseq/internal/sequence"
)

// Runner drives one pipeline run over a store.
type Runner struct {
	registry *registry.Registry
	store    *plugin.Store
}

// New creates a Runner over the given registry and store.
func New(reg *registry.Registry, store *plugin.Store) *Runner {
	return &Runner{registry: reg, store: store}
}

// Run walks the content stages in their canonical order and, within each
// stage, invokes the plugins bound to that stage following the resolved
// order. Identities with no implementation in any category are logged and
// skipped; the resolver deliberately does not validate plugin existence, so
// tolerating them here is the host's policy. The first plugin failure aborts
// the run.
func (r *Runner) Run(ctx context.Context, order []sequence.ID) error {
	logger := ctxlog.FromContext(ctx)

	for _, id := range order {
		if !r.registry.Registered(id) {
			logger.Warn("No implementation registered for plugin, skipping.", "plugin", id.String())
		}
	}

	for _, stage := range plugin.StageOrder() {
		invoked := 0
		for _, id := range order {
			if err := r.invoke(ctx, stage, id, &invoked); err != nil {
				return err
			}
		}
		logger.Debug("Pipeline stage finished.", "stage", string(stage), "plugins_invoked", invoked, "items", len(r.store.Items()))
	}
	return nil
}

func (r *Runner) invoke(ctx context.Context, stage plugin.Category, id sequence.ID, invoked *int) error {
	var err error
	switch stage {
	case plugin.CategoryLoader:
		if impl, ok := r.registry.Loader(id); ok {
			*invoked++
			err = impl.Load(ctx, r.store)
		}
	case plugin.CategoryPreProcessor:
		if impl, ok := r.registry.PreProcessor(id); ok {
			*invoked++
			err = impl.PreProcess(ctx, r.store)
		}
	case plugin.CategoryProcessor:
		if impl, ok := r.registry.Processor(id); ok {
			*invoked++
			err = impl.Process(ctx, r.store)
		}
	case plugin.CategoryPostProcessor:
		if impl, ok := r.registry.PostProcessor(id); ok {
			*invoked++
			err = impl.PostProcess(ctx, r.store)
		}
	case plugin.CategoryWriter:
		if impl, ok := r.registry.Writer(id); ok {
			*invoked++
			err = impl.Write(ctx, r.store)
		}
	}
	if err != nil {
		return fmt.Errorf("%s plugin %s: %w", stage, id, err)
	}
	return nil
}

// RunCommand dispatches a host command to every command processor in the
// resolved order.
func (r *Runner) RunCommand(ctx context.Context, order []sequence.ID, args []string) error {
	logger := ctxlog.FromContext(ctx)

	invoked := 0
	for _, id := range order {
		impl, ok := r.registry.CommandProcessor(id)
		if !ok {
			continue
		}
		invoked++
		if err := impl.ProcessCommand(ctx, args, r.store); err != nil {
			return fmt.Errorf("command processor %s: %w", id, err)
		}
	}
	if invoked == 0 {
		logger.Warn("No command processor handled the command.", "args", args)
	}
	return nil
}
