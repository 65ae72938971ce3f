// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolve produces one fully-populated, validated
// configuration record from up to two raw sources plus built-in
// defaults.
//
// The pipeline per source is parse → whitelist; the validated sources
// are then merged (external over defaults, inline over that) and the
// result stamped with the resolver version and load timestamp under
// the reserved pyscript key.
package resolve

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/pyconfig/internal/logger"
	"github.com/MKhiriev/pyconfig/internal/markup"
	"github.com/MKhiriev/pyconfig/internal/parser"
	"github.com/MKhiriev/pyconfig/internal/whitelist"
	"github.com/MKhiriev/pyconfig/models"
)

// Fetcher retrieves raw configuration text by location. A single
// attempt, no retry; failures propagate to the caller as-is.
type Fetcher interface {
	Text(ctx context.Context, location string) (string, error)
}

// Resolver resolves configuration records. It keeps no per-call state
// and is safe to reuse across resolutions.
type Resolver struct {
	fetch   Fetcher
	log     *logger.Logger
	notify  Notifier
	version string
	now     func() time.Time
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithFetcher sets the external-source text fetcher.
func WithFetcher(f Fetcher) Option {
	return func(r *Resolver) { r.fetch = f }
}

// WithLogger sets the trace logger.
func WithLogger(log *logger.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// WithNotifier sets the deprecation-notice sink.
func WithNotifier(n Notifier) Option {
	return func(r *Resolver) { r.notify = n }
}

// WithVersion overrides the version written into the pyscript stamp.
func WithVersion(version string) Option {
	return func(r *Resolver) { r.version = version }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// New constructs a Resolver. Without options it logs nowhere, stamps
// models.Version, and fails any external fetch; embedders supply a
// Fetcher via WithFetcher.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		log:     logger.Nop(),
		version: models.Version,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.notify == nil {
		r.notify = &logNotifier{log: r.log}
	}
	return r
}

// Resolve produces the final configuration record for the given config
// element. A nil element resolves to the built-in defaults. Otherwise
// the element's external source (src attribute) and inline text are
// each parsed and whitelisted independently, merged over the defaults
// with inline taking precedence, and stamped.
func (r *Resolver) Resolve(ctx context.Context, el *markup.ConfigElement) (models.Record, error) {
	notify := newOnce(r.notify)
	filter := whitelist.New(notify, r.log)

	external := models.Record{}
	inline := models.Record{}

	if el != nil {
		format := el.Format()

		if el.Src != "" {
			text, err := r.fetchText(ctx, el.Src)
			if err != nil {
				return nil, err
			}
			external, err = r.loadSource(filter, text, format)
			if err != nil {
				return nil, err
			}
		}

		if strings.TrimSpace(el.Text) != "" {
			var err error
			inline, err = r.loadSource(filter, markup.DecodeEntities(el.Text), format)
			if err != nil {
				return nil, err
			}
		}
	}

	merged := Merge(external, models.Defaults())
	merged = Merge(inline, merged)
	merged[models.KeyPyscript] = models.NewStamp(r.version, r.now()).AsValue()

	r.log.Debug().Any("config", merged).Msg("resolved configuration")

	return merged, nil
}

func (r *Resolver) fetchText(ctx context.Context, location string) (string, error) {
	if r.fetch == nil {
		return "", fmt.Errorf("no fetcher configured for external config %q", location)
	}

	text, err := r.fetch.Text(ctx, location)
	if err != nil {
		return "", fmt.Errorf("fetching config from %q: %w", location, err)
	}

	return text, nil
}

func (r *Resolver) loadSource(filter *whitelist.Filter, text, format string) (models.Record, error) {
	raw, err := parser.Parse(text, format)
	if err != nil {
		return nil, err
	}

	return filter.Apply(raw)
}
