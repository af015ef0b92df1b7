// Package config provides configuration loading and validation for ltime.
package config

import "github.com/ccollicutt/ltime/pkg/zone"

// Config is the root configuration structure loaded from YAML or TOML.
type Config struct {
	// Timezone is the target for rewritten timestamps: "local", "utc",
	// a numeric offset such as "+09:00", or an IANA name such as "Asia/Tokyo".
	Timezone string `yaml:"timezone" toml:"timezone" validate:"zonerule"`

	// Log controls diagnostic logging. Filtered output never goes here.
	Log LogConfig `yaml:"log" toml:"log"`

	// rule is the parsed Timezone (populated during validation).
	rule zone.Rule

	// path is the file the config was read from, empty for defaults.
	path string
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error or disabled.
	Level string `yaml:"level" toml:"level" validate:"omitempty,oneof=debug info warn error disabled"`

	// File is a path to append JSON logs to. Empty means stderr.
	File string `yaml:"file,omitempty" toml:"file,omitempty"`

	// Format is auto, console or json. Auto picks console on a terminal.
	Format string `yaml:"format" toml:"format" validate:"omitempty,oneof=auto console json"`
}

// Rule returns the parsed target timezone rule.
func (c *Config) Rule() zone.Rule {
	return c.rule
}

// Path returns the file the configuration was read from, or "" when only
// defaults and environment were used.
func (c *Config) Path() string {
	return c.path
}
