// Package yamlcfg is the YAML implementation of the config.Loader
// interface, for hosts that keep their settings in YAML rather than HCL:
//
//	themes:
//	  pre_load:
//	    sequence: |
//	      loader_a <<0 loader_b
//	    options:
//	      source: content
package yamlcfg

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vk/pluginseq/internal/config"
	"github.com/vk/pluginseq/internal/ctxlog"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Themes map[string]*themeNode `yaml:"themes"`
}

type themeNode struct {
	Sequence string            `yaml:"sequence"`
	Enabled  *bool             `yaml:"enabled"`
	Options  map[string]string `yaml:"options"`
}

// Load parses every given file and merges the discovered themes into one
// model. Themes within a file are added in name order so that loading is
// independent of YAML map iteration; duplicate theme names are an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML settings loader started.", "file_count", len(paths))

	model := config.NewModel()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}

		var root fileRoot
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to decode settings file %s: %w", path, err)
		}

		names := make([]string, 0, len(root.Themes))
		for name := range root.Themes {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			node := root.Themes[name]
			theme := &config.Theme{
				Name:     name,
				Sequence: node.Sequence,
				Enabled:  true,
				Options:  node.Options,
			}
			if node.Enabled != nil {
				theme.Enabled = *node.Enabled
			}
			if err := model.Add(theme); err != nil {
				return nil, fmt.Errorf("settings file %s: %w", path, err)
			}
		}
	}

	logger.Debug("YAML settings loading complete.", "themes", len(model.Themes))
	return model, nil
}
