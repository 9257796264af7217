package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SettingsPath string // settings files (hcl or yaml)

	Source  string // default source dir for loader plugins
	Output  string // default output dir for writer plugins
	Command string // host command for command-processor plugins
	DryRun  bool   // resolve and print the order only

	LogFormat string
	LogLevel  string
}

// NewConfig validates the given configuration and returns it. Empty log
// fields get their defaults; unrecognized values are rejected rather than
// silently downgraded, so a typo in a host-supplied config surfaces at
// startup.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SettingsPath == "" {
		return nil, errors.New("SettingsPath is a required configuration field and cannot be empty")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("unknown log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("unknown log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
