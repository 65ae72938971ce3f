// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Interpreter source the loader falls back to when the page declares
// none.
const (
	DefaultInterpreterSrc  = "https://cdn.jsdelivr.net/pyodide/v0.23.2/full/pyodide.js"
	DefaultInterpreterName = "pyodide-0.23.2"
	DefaultInterpreterLang = "python"
)

// Defaults returns the built-in configuration template. A fresh record
// is constructed on every call; callers may mutate the result freely
// without affecting later calls.
func Defaults() Record {
	return Record{
		KeyName:            "",
		KeyDescription:     "",
		KeyVersion:         "",
		KeyType:            "app",
		KeyAuthorName:      "",
		KeyAuthorEmail:     "",
		KeyLicense:         "",
		KeySchemaVersion:   int64(1),
		KeyExecutionThread: ThreadMain,
		KeyInterpreters: []any{
			map[string]any{
				FieldSrc:  DefaultInterpreterSrc,
				FieldName: DefaultInterpreterName,
				FieldLang: DefaultInterpreterLang,
			},
		},
		KeyPackages: []any{},
		KeyFetch:    []any{},
		KeyPlugins:  []any{},
	}
}
