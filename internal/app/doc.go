// Package app wires the application together: settings loading, logger
// construction, plugin module registration, order resolution, and the
// pipeline run.
package app
