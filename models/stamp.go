// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Version is the resolver release identifier stamped into every
// resolved record. Overridden via linker flags in release builds.
var Version = "0.0.0-dev"

// Stamp identifies which resolver version produced a record and when.
// It is injected under the reserved pyscript key, never user-supplied.
type Stamp struct {
	Version string `json:"version"`
	Time    string `json:"time"`
}

// NewStamp builds a stamp for the given resolver version, with the
// load timestamp rendered as RFC 3339 UTC.
func NewStamp(version string, at time.Time) Stamp {
	return Stamp{
		Version: version,
		Time:    at.UTC().Format(time.RFC3339),
	}
}

// AsValue returns the stamp in record wire shape.
func (s Stamp) AsValue() map[string]any {
	return map[string]any{
		"version": s.Version,
		"time":    s.Time,
	}
}
