// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the configuration record, its recognized-key
// schema, the built-in defaults, and the pyscript stamp shared across
// the resolver pipeline.
package models

// Record is a single configuration record: a mapping from top-level key
// names to values. Recognized keys (see [Schema]) carry declared types;
// any other key is an extra key that travels through the pipeline
// untouched so downstream plugins can carry custom data.
//
// Values use the wire-level shapes produced by the parsers: string,
// int64/float64, []any, and map[string]any.
type Record map[string]any

// IsEmpty reports whether the record carries no keys at all.
func (r Record) IsEmpty() bool {
	return len(r) == 0
}

// Clone returns a deep copy of the record. Nested maps and lists are
// copied as well, so mutating the clone never touches the original.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(value))
		for k, e := range value {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		l := make([]any, len(value))
		for i, e := range value {
			l[i] = cloneValue(e)
		}
		return l
	default:
		return v
	}
}
