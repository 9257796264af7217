package config

import "fmt"

// Model is the unified, format-agnostic representation of the host
// configuration: every theme with its directive text and options.
type Model struct {
	Themes []*Theme
}

// Theme is one namespace of directive text, as authored in a settings file.
type Theme struct {
	Name string
	// Sequence is the theme's relation directive text, one directive per
	// line.
	Sequence string
	// Enabled themes contribute to resolution; disabled ones are kept in
	// the model but skipped by the host.
	Enabled bool
	// Options are free-form string settings handed to the theme's plugins.
	Options map[string]string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Add appends a theme, rejecting duplicate names across all loaded files.
func (m *Model) Add(t *Theme) error {
	for _, existing := range m.Themes {
		if existing.Name == t.Name {
			return fmt.Errorf("theme '%s' defined more than once", t.Name)
		}
	}
	m.Themes = append(m.Themes, t)
	return nil
}

// Theme looks up a theme by name.
func (m *Model) Theme(name string) (*Theme, bool) {
	for _, t := range m.Themes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
