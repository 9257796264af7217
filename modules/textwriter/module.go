package textwriter

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vk/pluginseq/internal/ctxlog"
	"github.com/vk/pluginseq/internal/plugin"
	"github.com/vk/pluginseq/internal/registry"
	"github.com/vk/pluginseq/internal/sequence"
)

// ID is the identity this module registers under.
var ID = sequence.ID{Theme: "post_process", Name: "default"}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Writer persists every store item under the configured output directory,
// creating subdirectories as needed. Without an "output" option the writer
// only logs what it would have written.
type Writer struct{}

// Write implements plugin.Writer.
func (w *Writer) Write(ctx context.Context, store *plugin.Store) error {
	logger := ctxlog.FromContext(ctx)

	out, ok := store.Option(ID.Theme, "output")
	if !ok || out == "" {
		for _, item := range store.Items() {
			logger.Info("Would write item (no output directory configured).", "plugin", ID.String(), "item", item.Name, "bytes", len(item.Body))
		}
		return nil
	}

	for _, item := range store.Items() {
		dest := filepath.Join(out, filepath.FromSlash(item.Name))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dest, item.Body, 0o644); err != nil {
			return err
		}
	}

	logger.Info("Wrote content items.", "plugin", ID.String(), "count", len(store.Items()), "output", out)
	return nil
}

// Register registers the writer with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterWriter(ID, &Writer{})
}
