// Package config provides configuration loading for rep.
//
// Configuration is layered (highest to lowest priority):
//  1. Environment variables (REP_*)
//  2. Project config (.rep/config.yml in the working directory)
//  3. User config (~/.rep/config.yml)
//  4. Built-in defaults
//
// Nested keys map to environment variables with underscores, e.g.
// files.ignore is REP_FILES_IGNORE. List values from the environment are
// comma-separated.
package config

import (
	"strings"

	"github.com/mvp-joe/rep/internal/flags"
)

// Config represents the complete rep configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults" mapstructure:"defaults"`
	Files    FilesConfig    `yaml:"files" mapstructure:"files"`
}

// DefaultsConfig holds settings applied to every run.
type DefaultsConfig struct {
	Flags []string `yaml:"flags" mapstructure:"flags"` // flag tokens applied before command-line flags, e.g. ["-n"]
}

// FilesConfig controls file resolution.
type FilesConfig struct {
	// Ignore holds glob patterns matched against each resolved path as a whole,
	// in slash form. "*.bak" drops only top-level files of a relative pattern
	// and never an absolute path; "**/*.bak" drops them at any depth.
	Ignore []string `yaml:"ignore" mapstructure:"ignore"`
}

// Default returns a configuration with no default flags and nothing ignored.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Flags: []string{},
		},
		Files: FilesConfig{
			Ignore: []string{},
		},
	}
}

// DefaultFlags converts the configured flag tokens. Tokens that are not
// flags are skipped; Validate reports them.
func (c *Config) DefaultFlags() []flags.Flag {
	result := []flags.Flag{}
	for _, token := range c.Defaults.Flags {
		if f, ok := flags.Of(strings.TrimSpace(token)); ok {
			result = append(result, f)
		}
	}
	return result
}
