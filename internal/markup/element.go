// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package markup models the py-config element the resolver reads its
// sources from, and locates it inside an HTML document.
package markup

import (
	stdhtml "html"

	"github.com/MKhiriev/pyconfig/internal/parser"
)

// ConfigTag is the element name searched for in documents.
const ConfigTag = "py-config"

// ConfigElement is the configuration-bearing markup element. Any field
// may be empty: Type defaults to TOML, Src references external config
// text, Text is the element's inline content (possibly entity-encoded).
type ConfigElement struct {
	Type string
	Src  string
	Text string
}

// Format returns the declared serialization format, defaulting to TOML
// when the element is absent or carries no type attribute.
func (e *ConfigElement) Format() string {
	if e == nil || e.Type == "" {
		return parser.FormatTOML
	}
	return e.Type
}

// DecodeEntities resolves HTML character references (&quot;, &lt; and
// friends) in inline config text.
func DecodeEntities(text string) string {
	return stdhtml.UnescapeString(text)
}
