// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/pyconfig/internal/parser"

// validate checks that the merged [Settings] are usable before the
// tool starts resolving.
func (s *Settings) validate() error {
	if s.Page != "" && (s.Src != "" || s.Inline != "") {
		return ErrConflictingSources
	}

	if s.Format != "" && s.Format != parser.FormatTOML && s.Format != parser.FormatJSON {
		return ErrUnsupportedFormat
	}

	if s.FetchTimeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}
