// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command pyconfig resolves a PyScript-style application configuration
// and prints the merged record as JSON. It reads a py-config element
// from an HTML page, or takes the external source and inline text
// directly via flags, and applies the same parse → whitelist → merge →
// stamp pipeline the runtime loader uses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/pyconfig/internal/config"
	"github.com/MKhiriev/pyconfig/internal/fetch"
	"github.com/MKhiriev/pyconfig/internal/logger"
	"github.com/MKhiriev/pyconfig/internal/markup"
	"github.com/MKhiriev/pyconfig/internal/resolve"
	"github.com/MKhiriev/pyconfig/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pyconfig")
	settings, err := config.GetSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting settings")
	}
	if settings.LogLevel != "" {
		log = log.Level(settings.LogLevel)
	}

	log.Debug().Any("settings", settings).Msg("received settings")

	el, err := configElement(settings)
	if err != nil {
		log.Fatal().Err(err).Msg("error locating config element")
	}

	resolver := resolve.New(
		resolve.WithLogger(log),
		resolve.WithFetcher(fetch.New(log, settings.FetchTimeout)),
		resolve.WithVersion(resolverVersion()),
	)

	record, err := resolver.Resolve(context.Background(), el)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving configuration")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		log.Fatal().Err(err).Msg("error encoding resolved configuration")
	}
}

// configElement builds the config element from the settings: either by
// scanning an HTML page, or directly from the src/inline/format
// values. Returns nil when no source is given at all, which resolves
// to the built-in defaults.
func configElement(settings *config.Settings) (*markup.ConfigElement, error) {
	if settings.Page != "" {
		page, err := os.Open(settings.Page)
		if err != nil {
			return nil, fmt.Errorf("opening page %q: %w", settings.Page, err)
		}
		defer page.Close()

		return markup.FindConfig(page)
	}

	if settings.Src == "" && settings.Inline == "" {
		return nil, nil
	}

	return &markup.ConfigElement{
		Type: settings.Format,
		Src:  settings.Src,
		Text: settings.Inline,
	}, nil
}

func resolverVersion() string {
	if buildVersion != "" && buildVersion != "N/A" {
		return buildVersion
	}
	return models.Version
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
