package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/pluginseq/internal/plugin"
	"github.com/vk/pluginseq/internal/registry"
	"github.com/vk/pluginseq/internal/sequence"
)

// recorder appends a label to a shared trace on every invocation, so tests
// can assert the exact cross-stage invocation order.
type recorder struct {
	label string
	trace *[]string
	err   error
}

func (r *recorder) record(suffix string) error {
	*r.trace = append(*r.trace, r.label+":"+suffix)
	return r.err
}

func (r *recorder) Load(context.Context, *plugin.Store) error        { return r.record("load") }
func (r *recorder) PreProcess(context.Context, *plugin.Store) error  { return r.record("pre") }
func (r *recorder) Process(context.Context, *plugin.Store) error     { return r.record("proc") }
func (r *recorder) PostProcess(context.Context, *plugin.Store) error { return r.record("post") }
func (r *recorder) Write(context.Context, *plugin.Store) error       { return r.record("write") }

func (r *recorder) ProcessCommand(_ context.Context, args []string, _ *plugin.Store) error {
	*r.trace = append(*r.trace, r.label+":cmd")
	return r.err
}

func TestRun_StagesInCanonicalOrder(t *testing.T) {
	var trace []string
	reg := registry.New()

	loaderID := sequence.ID{Theme: "pre_load", Name: "default"}
	procID := sequence.ID{Theme: "in_process", Name: "markdown"}
	writerID := sequence.ID{Theme: "post_process", Name: "default"}

	reg.RegisterLoader(loaderID, &recorder{label: "loader", trace: &trace})
	reg.RegisterProcessor(procID, &recorder{label: "markdown", trace: &trace})
	reg.RegisterWriter(writerID, &recorder{label: "writer", trace: &trace})

	// The writer comes first in the resolved order, but stages still run
	// loader before processor before writer.
	order := []sequence.ID{writerID, loaderID, procID}

	runner := New(reg, plugin.NewStore())
	require.NoError(t, runner.Run(context.Background(), order))

	assert.Equal(t, []string{"loader:load", "markdown:proc", "writer:write"}, trace)
}

func TestRun_ResolvedOrderWithinAStage(t *testing.T) {
	var trace []string
	reg := registry.New()

	first := sequence.ID{Theme: "pre_load", Name: "first"}
	second := sequence.ID{Theme: "pre_load", Name: "second"}
	reg.RegisterLoader(first, &recorder{label: "first", trace: &trace})
	reg.RegisterLoader(second, &recorder{label: "second", trace: &trace})

	runner := New(reg, plugin.NewStore())
	require.NoError(t, runner.Run(context.Background(), []sequence.ID{second, first}))

	assert.Equal(t, []string{"second:load", "first:load"}, trace)
}

func TestRun_SkipsUnregisteredIdentities(t *testing.T) {
	var trace []string
	reg := registry.New()
	known := sequence.ID{Theme: "pre_load", Name: "default"}
	reg.RegisterLoader(known, &recorder{label: "known", trace: &trace})

	order := []sequence.ID{
		{Theme: "pre_load", Name: "ghost"},
		known,
	}

	runner := New(reg, plugin.NewStore())
	require.NoError(t, runner.Run(context.Background(), order))
	assert.Equal(t, []string{"known:load"}, trace)
}

func TestRun_FirstFailureAborts(t *testing.T) {
	var trace []string
	reg := registry.New()

	bad := sequence.ID{Theme: "pre_load", Name: "bad"}
	never := sequence.ID{Theme: "post_process", Name: "never"}
	reg.RegisterLoader(bad, &recorder{label: "bad", trace: &trace, err: errors.New("boom")})
	reg.RegisterWriter(never, &recorder{label: "never", trace: &trace})

	runner := New(reg, plugin.NewStore())
	err := runner.Run(context.Background(), []sequence.ID{bad, never})
	require.Error(t, err)
	assert.ErrorContains(t, err, "loader plugin pre_load.bad: boom")
	assert.Equal(t, []string{"bad:load"}, trace, "later stages must not run after a failure")
}

func TestRunCommand(t *testing.T) {
	t.Run("dispatches in resolved order", func(t *testing.T) {
		var trace []string
		reg := registry.New()

		a := sequence.ID{Theme: "command", Name: "a"}
		b := sequence.ID{Theme: "command", Name: "b"}
		reg.RegisterCommandProcessor(a, &recorder{label: "a", trace: &trace})
		reg.RegisterCommandProcessor(b, &recorder{label: "b", trace: &trace})

		runner := New(reg, plugin.NewStore())
		require.NoError(t, runner.RunCommand(context.Background(), []sequence.ID{b, a}, []string{"deploy"}))
		assert.Equal(t, []string{"b:cmd", "a:cmd"}, trace)
	})

	t.Run("no handler is not an error", func(t *testing.T) {
		runner := New(registry.New(), plugin.NewStore())
		assert.NoError(t, runner.RunCommand(context.Background(), nil, []string{"deploy"}))
	})

	t.Run("failure is wrapped", func(t *testing.T) {
		var trace []string
		reg := registry.New()
		id := sequence.ID{Theme: "command", Name: "bad"}
		reg.RegisterCommandProcessor(id, &recorder{label: "bad", trace: &trace, err: errors.New("boom")})

		runner := New(reg, plugin.NewStore())
		err := runner.RunCommand(context.Background(), []sequence.ID{id}, nil)
		assert.ErrorContains(t, err, "command processor command.bad: boom")
	})
}

func TestStore_Options(t *testing.T) {
	store := plugin.NewStore()
	store.SetOptions("", map[string]string{"source": "content", "output": "public"})
	store.SetOptions("pre_load", map[string]string{"source": "drafts"})

	v, ok := store.Option("pre_load", "source")
	require.True(t, ok)
	assert.Equal(t, "drafts", v, "theme options shadow host-wide defaults")

	v, ok = store.Option("pre_load", "output")
	require.True(t, ok)
	assert.Equal(t, "public", v, "missing theme option falls back to defaults")

	_, ok = store.Option("pre_load", "nope")
	assert.False(t, ok)
}
