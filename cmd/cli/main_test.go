package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL settings file with a syntax error is guaranteed to cause a
	// panic during the loading phase inside app.NewApp().
	invalidHCL := `
		theme "pre_load" {
			sequence =
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "settings.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"--dry-run", filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should recover the panic and return it as an error.
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to load settings"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_DryRunPrintsResolvedOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	settings := `
theme "pre_load" {
  sequence = <<-EOT
    loader_a <<0 loader_b
    loader_c <<1 loader_b
  EOT
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "settings.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(settings), 0600))

	args := []string{"--dry-run", "--log-level", "error", filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	output := out.String()
	cIdx := strings.Index(output, "pre_load.loader_c")
	aIdx := strings.Index(output, "pre_load.loader_a")
	bIdx := strings.Index(output, "pre_load.loader_b")
	require.GreaterOrEqual(t, cIdx, 0)
	require.True(t, cIdx < aIdx && aIdx < bIdx, "expected order loader_c, loader_a, loader_b, got:\n%s", output)
}

func TestRun_ContradictoryDirectivesFail(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The two degree groups pull loader_a and loader_b in opposite
	// directions: loader_c's left-anchored chain orders loader_b before
	// loader_a, while loader_b's right-anchored chain orders loader_a
	// before loader_b. That is a contradiction, not a tie.
	settings := `
theme "pre_load" {
  sequence = <<-EOT
    loader_a <<0 loader_b
    loader_c <<1 loader_b
    loader_c <<2 loader_a
  EOT
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "settings.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(settings), 0600))

	args := []string{"--dry-run", "--log-level", "error", filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to resolve plugin order")
	require.Contains(t, err.Error(), "ordering contradiction")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
