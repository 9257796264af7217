package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/pluginseq/internal/config"
	"github.com/vk/pluginseq/internal/ctxlog"
	"github.com/vk/pluginseq/internal/fsutil"
	"github.com/vk/pluginseq/internal/hclcfg"
	"github.com/vk/pluginseq/internal/yamlcfg"
)

// settingsPattern matches every settings file format we can load.
const settingsPattern = "**/*.{hcl,yaml,yml}"

// loadModel discovers settings files under the given path and dispatches
// each to the loader for its format, merging everything into one model.
func loadModel(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindByPattern(path, settingsPattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no settings files found under %s", path)
	}
	logger.Debug("Discovered settings files.", "count", len(files))

	var hclFiles, yamlFiles []string
	for _, file := range files {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".hcl":
			hclFiles = append(hclFiles, file)
		case ".yaml", ".yml":
			yamlFiles = append(yamlFiles, file)
		default:
			return nil, fmt.Errorf("unsupported settings format: %s", file)
		}
	}

	model := config.NewModel()
	if len(hclFiles) > 0 {
		loaded, err := hclcfg.NewLoader().Load(ctx, hclFiles...)
		if err != nil {
			return nil, err
		}
		for _, theme := range loaded.Themes {
			if err := model.Add(theme); err != nil {
				return nil, err
			}
		}
	}
	if len(yamlFiles) > 0 {
		loaded, err := yamlcfg.NewLoader().Load(ctx, yamlFiles...)
		if err != nil {
			return nil, err
		}
		for _, theme := range loaded.Themes {
			if err := model.Add(theme); err != nil {
				return nil, err
			}
		}
	}
	return model, nil
}
