// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Settings holds the pyconfig CLI's own runtime settings. These are
// about how the tool runs, not about the configuration record it
// resolves.
//
// Values are assembled from environment variables and command-line
// flags; environment variables take precedence for fields set in both.
type Settings struct {
	// Page is the path to an HTML document to scan for a py-config
	// element.
	// Env: PYCONFIG_PAGE
	Page string `env:"PYCONFIG_PAGE"`

	// Src is an explicit external config location (URL or file path),
	// as if the element carried it in its src attribute.
	// Env: PYCONFIG_SRC
	Src string `env:"PYCONFIG_SRC"`

	// Inline is raw inline config text, as if it were the element's
	// content.
	// Env: PYCONFIG_INLINE
	Inline string `env:"PYCONFIG_INLINE"`

	// Format is the declared config format: "toml" (default) or
	// "json".
	// Env: PYCONFIG_FORMAT
	Format string `env:"PYCONFIG_FORMAT"`

	// FetchTimeout bounds the external config fetch (e.g. "10s").
	// Zero means the HTTP client default.
	// Env: PYCONFIG_FETCH_TIMEOUT
	FetchTimeout time.Duration `env:"PYCONFIG_FETCH_TIMEOUT"`

	// LogLevel is the zerolog level name for tool tracing ("debug",
	// "info", ...). Empty keeps the logger's default.
	// Env: PYCONFIG_LOG_LEVEL
	LogLevel string `env:"PYCONFIG_LOG_LEVEL"`
}

// GetSettings loads, merges, and validates the tool settings from all
// sources.
func GetSettings() (*Settings, error) {
	return newSettingsBuilder().
		withEnv().
		withFlags().
		build()
}
