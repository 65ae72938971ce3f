// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parser turns raw configuration text into a models.Record.
//
// Two serialization formats are supported: TOML (the default) and
// JSON. JSON input may be authored as JSONC (comments and trailing
// commas), which is stripped before decoding. Every failure is
// reported as a BAD_CONFIG error carrying the offending text.
package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"

	"github.com/MKhiriev/pyconfig/models"
)

// Supported values of the config element's format attribute.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Parse decodes text per the declared format into a raw record.
//
// TOML input whose first non-whitespace byte is '{' is rejected before
// parsing: it is almost always JSON routed to the wrong parser, and
// the TOML decoder's own diagnostic for it is useless. Any format
// other than "toml" or "json" fails immediately.
func Parse(text, format string) (models.Record, error) {
	switch format {
	case FormatTOML:
		return parseTOML(text)
	case FormatJSON:
		return parseJSON(text)
	default:
		reason := fmt.Sprintf("unsupported config type %q, supported values are %q and %q", format, FormatTOML, FormatJSON)
		return nil, models.NewBadConfig(reason, text)
	}
}

func parseTOML(text string) (models.Record, error) {
	if looksLikeJSON(text) {
		return nil, models.NewBadConfig("config supplied as TOML but the content looks like JSON", text)
	}

	raw := map[string]any{}
	if err := toml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, models.NewBadConfig(fmt.Sprintf("invalid TOML config: %v", err), text)
	}

	return normalize(raw), nil
}

func parseJSON(text string) (models.Record, error) {
	stripped := jsonc.ToJSON([]byte(text))

	raw := map[string]any{}
	if err := json.Unmarshal(stripped, &raw); err != nil {
		return nil, models.NewBadConfig(fmt.Sprintf("invalid JSON config: %v", err), text)
	}

	return models.Record(raw), nil
}

func looksLikeJSON(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "{")
}

// normalize rewrites the TOML decoder's output into the record wire
// shapes: nested tables become map[string]any and arrays of tables
// become []any, matching what the JSON decoder produces.
func normalize(m map[string]any) models.Record {
	out := make(models.Record, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return map[string]any(normalize(value))
	case []map[string]any:
		l := make([]any, len(value))
		for i, e := range value {
			l[i] = normalizeValue(e)
		}
		return l
	case []any:
		l := make([]any, len(value))
		for i, e := range value {
			l[i] = normalizeValue(e)
		}
		return l
	default:
		return v
	}
}
