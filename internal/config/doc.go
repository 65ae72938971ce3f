// Package config provides loading, merging, and validation of the
// pyconfig CLI's own runtime settings.
//
// Settings are assembled from two sources (earlier sources take
// precedence for fields set in both):
//  1. Environment variables (PYCONFIG_*)
//  2. Command-line flags
//
// The main entry point is [GetSettings]. Note that this package
// configures the tool itself; the application configuration records
// the tool resolves live in the models and resolve packages.
package config
