package markdown

import (
	"context"
	"strings"

	"github.com/vk/pluginseq/internal/ctxlog"
	"github.com/vk/pluginseq/internal/plugin"
	"github.com/vk/pluginseq/internal/registry"
	"github.com/vk/pluginseq/internal/sequence"
)

// ID is the identity this module registers under.
var ID = sequence.ID{Theme: "in_process", Name: "markdown"}

// Module implements the registry.Module interface for this package.
type Module struct{}

// PreProcessor lifts titles out of markdown items: the first ATX heading
// becomes the item's "title" metadata and is removed from the body. Items
// without a .md name pass through untouched.
type PreProcessor struct{}

// PreProcess implements plugin.PreProcessor.
func (p *PreProcessor) PreProcess(ctx context.Context, store *plugin.Store) error {
	logger := ctxlog.FromContext(ctx)

	touched := 0
	for _, item := range store.Items() {
		if !strings.HasSuffix(item.Name, ".md") {
			continue
		}
		if title, rest, ok := splitTitle(string(item.Body)); ok {
			item.Meta["title"] = title
			item.Body = []byte(rest)
			touched++
		}
	}

	logger.Debug("Markdown preprocessing finished.", "plugin", ID.String(), "items_touched", touched)
	return nil
}

// splitTitle removes the first ATX heading line, returning its text and the
// remaining body.
func splitTitle(body string) (title, rest string, ok bool) {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "#") {
			return "", "", false
		}
		title = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		rest = strings.Join(append(lines[:i:i], lines[i+1:]...), "\n")
		return title, rest, true
	}
	return "", "", false
}

// Register registers the preprocessor with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPreProcessor(ID, &PreProcessor{})
}
