/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the jsrun CLI.
package config

import (
	"path/filepath"
	"strings"

	"jsrun.dev/jsrun/specifier"
)

// Config represents the jsrun configuration.
type Config struct {
	// ModulePaths are extra search directories, appended after the ones
	// named by the search path environment variable.
	ModulePaths []string `yaml:"modulePaths" json:"modulePaths"`

	// Includes are glob patterns for files evaluated before the main
	// script.
	Includes []string `yaml:"includes" json:"includes"`

	// Std exposes the std and os builtin modules as globals.
	Std bool `yaml:"std" json:"std"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// LookupEnv wraps an environment lookup so that the search path variable
// also carries the config's module paths. Every other variable passes
// through unchanged. The composed lookup is what gets injected into the
// resolver, which keeps reading it fresh on every call.
func (c *Config) LookupEnv(base specifier.LookupEnv) specifier.LookupEnv {
	return func(key string) (string, bool) {
		value, ok := base(key)
		if key != specifier.EnvVar || len(c.ModulePaths) == 0 {
			return value, ok
		}

		parts := make([]string, 0, len(c.ModulePaths)+1)
		if ok && value != "" {
			parts = append(parts, value)
		}
		parts = append(parts, c.ModulePaths...)
		return strings.Join(parts, string(filepath.ListSeparator)), true
	}
}
