package config

import "errors"

// Validation errors returned by [Settings.validate].
var (
	// ErrConflictingSources indicates that both a page to scan and an
	// explicit src/inline source were supplied.
	ErrConflictingSources = errors.New("page cannot be combined with src or inline")
	// ErrUnsupportedFormat indicates a -format value other than toml
	// or json.
	ErrUnsupportedFormat = errors.New("format must be toml or json")
	// ErrNegativeTimeout indicates a negative fetch timeout.
	ErrNegativeTimeout = errors.New("fetch timeout cannot be negative")
)
