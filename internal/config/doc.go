// Package config defines the format-agnostic settings model for the
// application, along with the Loader interface for reading it from various
// sources. The model is the single source of truth for the resolver and the
// pipeline; concrete loaders for HCL and YAML live in separate packages.
package config
