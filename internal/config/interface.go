package config

import "context"

// Loader is the interface for a format-specific settings loader. Load reads
// the given files and translates them into the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
