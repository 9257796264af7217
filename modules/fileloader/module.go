package fileloader

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vk/pluginseq/internal/ctxlog"
	"github.com/vk/pluginseq/internal/plugin"
	"github.com/vk/pluginseq/internal/registry"
	"github.com/vk/pluginseq/internal/sequence"
)

// ID is the identity this module registers under.
var ID = sequence.ID{Theme: "pre_load", Name: "default"}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Loader reads every file under the configured source directory into the
// store. The directory comes from the theme's "source" option, falling back
// to the host-wide default.
type Loader struct{}

// Load implements plugin.Loader.
func (l *Loader) Load(ctx context.Context, store *plugin.Store) error {
	logger := ctxlog.FromContext(ctx)

	src, ok := store.Option(ID.Theme, "source")
	if !ok || src == "" {
		logger.Debug("No source directory configured, nothing to load.", "plugin", ID.String())
		return nil
	}

	count := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		store.Add(&plugin.Item{
			Name: filepath.ToSlash(rel),
			Meta: map[string]string{"path": path},
			Body: body,
		})
		count++
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Loaded content items.", "plugin", ID.String(), "count", count, "source", src)
	return nil
}

// Register registers the loader with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterLoader(ID, &Loader{})
}
