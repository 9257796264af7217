// Package hclcfg is the HCL implementation of the config.Loader interface.
// A settings file holds one `theme "<name>" { ... }` block per namespace,
// with the directive text in a `sequence` heredoc.
package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/pluginseq/internal/config"
	"github.com/vk/pluginseq/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a settings file.
type fileRoot struct {
	Themes []*themeBlock `hcl:"theme,block"`
	Remain hcl.Body      `hcl:",remain"`
}

// themeBlock is the HCL-specific schema of a theme block.
type themeBlock struct {
	Name     string         `hcl:"name,label"`
	Sequence string         `hcl:"sequence,optional"`
	Enabled  *bool          `hcl:"enabled,optional"`
	Options  hcl.Expression `hcl:"options,optional"`
}

// Load parses every given file and merges the discovered theme blocks into
// one model. A theme name appearing twice, in one file or across files, is
// an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "file_count", len(paths))

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, path := range paths {
		hclFile, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
		}

		for _, block := range root.Themes {
			theme, err := l.translateTheme(block)
			if err != nil {
				return nil, fmt.Errorf("settings file %s: %w", path, err)
			}
			if err := model.Add(theme); err != nil {
				return nil, fmt.Errorf("settings file %s: %w", path, err)
			}
		}
	}

	logger.Debug("HCL settings loading complete.", "themes", len(model.Themes))
	return model, nil
}

// translateTheme converts the HCL-specific block into the agnostic model.
func (l *Loader) translateTheme(b *themeBlock) (*config.Theme, error) {
	theme := &config.Theme{
		Name:     b.Name,
		Sequence: b.Sequence,
		Enabled:  true,
	}
	if b.Enabled != nil {
		theme.Enabled = *b.Enabled
	}

	opts, err := decodeOptions(b.Options)
	if err != nil {
		return nil, fmt.Errorf("theme '%s': %w", b.Name, err)
	}
	theme.Options = opts
	return theme, nil
}

// decodeOptions evaluates the optional `options` attribute into string
// pairs. Values are converted through cty so numbers and bools read
// naturally in the settings file.
func decodeOptions(expr hcl.Expression) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid options: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("options must be an object, got %s", val.Type().FriendlyName())
	}

	opts := make(map[string]string)
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		key, err := convert.Convert(k, cty.String)
		if err != nil {
			return nil, fmt.Errorf("invalid option key: %w", err)
		}
		str, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, fmt.Errorf("option '%s': cannot convert %s to string: %w", key.AsString(), v.Type().FriendlyName(), err)
		}
		opts[key.AsString()] = str.AsString()
	}
	return opts, nil
}
