// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package whitelist applies the type-directed filter that turns a raw
// parsed record into a validated one.
//
// Recognized keys are kept only when their value matches the declared
// shape; mismatches are dropped silently. Structured entries
// (interpreters, runtimes, fetch) have their sub-fields whitelisted
// individually. Unrecognized keys pass through verbatim. The only hard
// failure is an execution_thread value outside the allowed set.
package whitelist

import (
	"fmt"

	"github.com/MKhiriev/pyconfig/internal/logger"
	"github.com/MKhiriev/pyconfig/models"
)

// Notifier receives deprecation notices raised while filtering.
type Notifier interface {
	Deprecated(message string)
}

// Filter validates raw records against the recognized-key schema.
type Filter struct {
	log    *logger.Logger
	notify Notifier
}

// New constructs a Filter that reports deprecations to notify and
// traces dropped keys through log.
func New(notify Notifier, log *logger.Logger) *Filter {
	return &Filter{log: log, notify: notify}
}

// Apply filters raw into a validated record. Returns a BAD_CONFIG
// error only when execution_thread carries a value other than "main"
// or "worker"; every other anomaly is a silent drop or pass-through.
func (f *Filter) Apply(raw models.Record) (models.Record, error) {
	out := models.Record{}

	for _, spec := range models.Schema() {
		v, ok := raw[spec.Name]
		if !ok {
			continue
		}
		if !spec.Matches(v) {
			f.log.Debug().Str("key", spec.Name).Msg("dropping config key with mismatched type")
			continue
		}

		switch spec.Name {
		case models.KeyExecutionThread:
			thread := v.(string)
			if thread != models.ThreadMain && thread != models.ThreadWorker {
				reason := fmt.Sprintf("%q must be %q or %q", models.KeyExecutionThread, models.ThreadMain, models.ThreadWorker)
				return nil, models.NewBadConfig(reason, thread)
			}
			out[spec.Name] = thread

		case models.KeyInterpreters:
			out[models.KeyInterpreters] = appendEntries(out[models.KeyInterpreters], interpreterEntries(v.([]any)))

		case models.KeyRuntimes:
			entries := interpreterEntries(v.([]any))
			if len(entries) > 0 {
				f.notify.Deprecated(fmt.Sprintf("the %q config key is deprecated, use %q instead", models.KeyRuntimes, models.KeyInterpreters))
			}
			out[models.KeyInterpreters] = appendEntries(out[models.KeyInterpreters], entries)

		case models.KeyFetch:
			out[spec.Name] = fetchEntries(v.([]any))

		default:
			out[spec.Name] = v
		}
	}

	for k, v := range raw {
		if !models.IsRecognized(k) {
			out[k] = v
		}
	}

	return out, nil
}

// interpreterEntries whitelists the src/name/lang sub-fields of each
// entry. An entry survives even when all of its sub-fields are dropped.
func interpreterEntries(entries []any) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryFields(e, []string{models.FieldSrc, models.FieldName, models.FieldLang}, nil))
	}
	return out
}

// fetchEntries whitelists the from/to_folder/to_file string sub-fields
// and the files list sub-field of each fetch directive.
func fetchEntries(entries []any) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryFields(e,
			[]string{models.FieldFrom, models.FieldToFolder, models.FieldToFile},
			[]string{models.FieldFiles}))
	}
	return out
}

func entryFields(entry any, stringFields, listFields []string) map[string]any {
	out := map[string]any{}

	m, ok := entry.(map[string]any)
	if !ok {
		return out
	}

	for _, field := range stringFields {
		if s, ok := m[field].(string); ok {
			out[field] = s
		}
	}
	for _, field := range listFields {
		if l, ok := m[field].([]any); ok {
			out[field] = l
		}
	}

	return out
}

func appendEntries(existing any, entries []any) []any {
	current, _ := existing.([]any)
	if current == nil {
		current = []any{}
	}
	return append(current, entries...)
}
