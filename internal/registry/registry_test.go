package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/pluginseq/internal/plugin"
	"github.com/vk/pluginseq/internal/sequence"
)

type noopLoader struct{}

func (noopLoader) Load(context.Context, *plugin.Store) error { return nil }

type noopWriter struct{}

func (noopWriter) Write(context.Context, *plugin.Store) error { return nil }

func TestRegistry_RegisterAndResolve(t *testing.T) {
	r := New()
	id := sequence.ID{Theme: "pre_load", Name: "default"}

	_, ok := r.Loader(id)
	assert.False(t, ok)
	assert.False(t, r.Registered(id))

	r.RegisterLoader(id, noopLoader{})

	impl, ok := r.Loader(id)
	require.True(t, ok)
	assert.NotNil(t, impl)
	assert.True(t, r.Registered(id))
}

func TestRegistry_DuplicateRegistrationPanics(t *testing.T) {
	r := New()
	id := sequence.ID{Theme: "pre_load", Name: "default"}
	r.RegisterLoader(id, noopLoader{})

	assert.PanicsWithValue(t, "loader already registered for plugin 'pre_load.default'", func() {
		r.RegisterLoader(id, noopLoader{})
	})
}

func TestRegistry_CategoriesAreIndependent(t *testing.T) {
	r := New()
	id := sequence.ID{Theme: "post_process", Name: "default"}

	// The same identity may appear in different categories.
	r.RegisterLoader(id, noopLoader{})
	assert.NotPanics(t, func() {
		r.RegisterWriter(id, noopWriter{})
	})

	_, ok := r.Writer(id)
	assert.True(t, ok)
	_, ok = r.Processor(id)
	assert.False(t, ok)
}

func TestModule_BindsIntoRegistry(t *testing.T) {
	r := New()
	var mod Module = moduleFunc(func(r *Registry) {
		r.RegisterWriter(sequence.ID{Theme: "post_process", Name: "default"}, noopWriter{})
	})
	mod.Register(r)
	assert.True(t, r.Registered(sequence.ID{Theme: "post_process", Name: "default"}))
}

type moduleFunc func(r *Registry)

func (f moduleFunc) Register(r *Registry) { f(r) }
