// Package plugin declares the capability interfaces a plugin can implement,
// one per recognized category, and the in-memory content store the pipeline
// threads through them. Category membership is static: a plugin type
// implements the interface for its category and is bound to an identity in
// the registry at startup, never discovered by reflection.
package plugin

import "context"

// Category names a plugin capability.
type Category string

const (
	CategoryLoader           Category = "loader"
	CategoryPreProcessor     Category = "preprocessor"
	CategoryProcessor        Category = "processor"
	CategoryPostProcessor    Category = "postprocessor"
	CategoryWriter           Category = "writer"
	CategoryCommandProcessor Category = "command_processor"
)

// StageOrder is the canonical invocation order of the content stages.
// Command processors sit outside the content flow and are dispatched
// separately.
func StageOrder() []Category {
	return []Category{
		CategoryLoader,
		CategoryPreProcessor,
		CategoryProcessor,
		CategoryPostProcessor,
		CategoryWriter,
	}
}

// Loader brings content items into the store.
type Loader interface {
	Load(ctx context.Context, store *Store) error
}

// PreProcessor adjusts items before the main processing stage.
type PreProcessor interface {
	PreProcess(ctx context.Context, store *Store) error
}

// Processor transforms loaded items.
type Processor interface {
	Process(ctx context.Context, store *Store) error
}

// PostProcessor adjusts items after the main processing stage.
type PostProcessor interface {
	PostProcess(ctx context.Context, store *Store) error
}

// Writer emits the final items out of the store.
type Writer interface {
	Write(ctx context.Context, store *Store) error
}

// CommandProcessor handles a host command before the content stages run.
type CommandProcessor interface {
	ProcessCommand(ctx context.Context, args []string, store *Store) error
}
