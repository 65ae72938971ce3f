package config

import (
	"flag"
	"time"
)

// ParseFlags parses all tool flags.
//
// Flags:
//
//	-page HTML document to scan for a py-config element
//	-src external config location (URL or file path)
//	-inline raw inline config text
//	-format declared config format: toml or json
//	-fetch-timeout external fetch timeout (e.g., "10s")
//	-log-level zerolog level name
func ParseFlags() *Settings {
	var page string
	var src string
	var inline string
	var format string
	var fetchTimeout time.Duration
	var logLevel string

	flag.StringVar(&page, "page", "", "HTML document to scan")
	flag.StringVar(&src, "src", "", "External config location")
	flag.StringVar(&inline, "inline", "", "Inline config text")
	flag.StringVar(&format, "format", "", "Config format: toml or json")
	flag.DurationVar(&fetchTimeout, "fetch-timeout", 0, "External fetch timeout (e.g., 10s)")
	flag.StringVar(&logLevel, "log-level", "", "Log level")

	flag.Parse()

	return &Settings{
		Page:         page,
		Src:          src,
		Inline:       inline,
		Format:       format,
		FetchTimeout: fetchTimeout,
		LogLevel:     logLevel,
	}
}
