package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/pluginseq/internal/plugin"
	"github.com/vk/pluginseq/internal/sequence"
)

// Module is the interface all plugin packages implement to bind their
// implementations into a registry at startup.
type Module interface {
	Register(r *Registry)
}

// Registry maps plugin identities to their implementations, one mapping per
// capability category, for a single application instance. Registration is a
// startup-time activity; a duplicate identity within a category is a
// programmer error and panics, matching the one-factory-per-category
// registration contract.
type Registry struct {
	loaders        map[sequence.ID]plugin.Loader
	preprocessors  map[sequence.ID]plugin.PreProcessor
	processors     map[sequence.ID]plugin.Processor
	postprocessors map[sequence.ID]plugin.PostProcessor
	writers        map[sequence.ID]plugin.Writer
	commands       map[sequence.ID]plugin.CommandProcessor
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		loaders:        make(map[sequence.ID]plugin.Loader),
		preprocessors:  make(map[sequence.ID]plugin.PreProcessor),
		processors:     make(map[sequence.ID]plugin.Processor),
		postprocessors: make(map[sequence.ID]plugin.PostProcessor),
		writers:        make(map[sequence.ID]plugin.Writer),
		commands:       make(map[sequence.ID]plugin.CommandProcessor),
	}
}

// RegisterLoader binds a loader implementation to an identity.
func (r *Registry) RegisterLoader(id sequence.ID, impl plugin.Loader) {
	if _, exists := r.loaders[id]; exists {
		panic(fmt.Sprintf("loader already registered for plugin '%s'", id))
	}
	slog.Debug("Registering loader plugin.", "plugin", id.String())
	r.loaders[id] = impl
}

// RegisterPreProcessor binds a preprocessor implementation to an identity.
func (r *Registry) RegisterPreProcessor(id sequence.ID, impl plugin.PreProcessor) {
	if _, exists := r.preprocessors[id]; exists {
		panic(fmt.Sprintf("preprocessor already registered for plugin '%s'", id))
	}
	slog.Debug("Registering preprocessor plugin.", "plugin", id.String())
	r.preprocessors[id] = impl
}

// RegisterProcessor binds a processor implementation to an identity.
func (r *Registry) RegisterProcessor(id sequence.ID, impl plugin.Processor) {
	if _, exists := r.processors[id]; exists {
		panic(fmt.Sprintf("processor already registered for plugin '%s'", id))
	}
	slog.Debug("Registering processor plugin.", "plugin", id.String())
	r.processors[id] = impl
}

// RegisterPostProcessor binds a postprocessor implementation to an identity.
func (r *Registry) RegisterPostProcessor(id sequence.ID, impl plugin.PostProcessor) {
	if _, exists := r.postprocessors[id]; exists {
		panic(fmt.Sprintf("postprocessor already registered for plugin '%s'", id))
	}
	slog.Debug("Registering postprocessor plugin.", "plugin", id.String())
	r.postprocessors[id] = impl
}

// RegisterWriter binds a writer implementation to an identity.
func (r *Registry) RegisterWriter(id sequence.ID, impl plugin.Writer) {
	if _, exists := r.writers[id]; exists {
		panic(fmt.Sprintf("writer already registered for plugin '%s'", id))
	}
	slog.Debug("Registering writer plugin.", "plugin", id.String())
	r.writers[id] = impl
}

// RegisterCommandProcessor binds a command processor to an identity.
func (r *Registry) RegisterCommandProcessor(id sequence.ID, impl plugin.CommandProcessor) {
	if _, exists := r.commands[id]; exists {
		panic(fmt.Sprintf("command processor already registered for plugin '%s'", id))
	}
	slog.Debug("Registering command processor plugin.", "plugin", id.String())
	r.commands[id] = impl
}

// Loader resolves the loader implementation for an identity.
func (r *Registry) Loader(id sequence.ID) (plugin.Loader, bool) {
	impl, ok := r.loaders[id]
	return impl, ok
}

// PreProcessor resolves the preprocessor implementation for an identity.
func (r *Registry) PreProcessor(id sequence.ID) (plugin.PreProcessor, bool) {
	impl, ok := r.preprocessors[id]
	return impl, ok
}

// Processor resolves the processor implementation for an identity.
func (r *Registry) Processor(id sequence.ID) (plugin.Processor, bool) {
	impl, ok := r.processors[id]
	return impl, ok
}

// PostProcessor resolves the postprocessor implementation for an identity.
func (r *Registry) PostProcessor(id sequence.ID) (plugin.PostProcessor, bool) {
	impl, ok := r.postprocessors[id]
	return impl, ok
}

// Writer resolves the writer implementation for an identity.
func (r *Registry) Writer(id sequence.ID) (plugin.Writer, bool) {
	impl, ok := r.writers[id]
	return impl, ok
}

// CommandProcessor resolves the command processor for an identity.
func (r *Registry) CommandProcessor(id sequence.ID) (plugin.CommandProcessor, bool) {
	impl, ok := r.commands[id]
	return impl, ok
}

// Registered reports whether the identity is bound in any category.
func (r *Registry) Registered(id sequence.ID) bool {
	if _, ok := r.loaders[id]; ok {
		return true
	}
	if _, ok := r.preprocessors[id]; ok {
		return true
	}
	if _, ok := r.processors[id]; ok {
		return true
	}
	if _, ok := r.postprocessors[id]; ok {
		return true
	}
	if _, ok := r.writers[id]; ok {
		return true
	}
	_, ok := r.commands[id]
	return ok
}
