// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Interpreter is the typed view of one interpreters entry.
type Interpreter struct {
	Src  string `json:"src"`
	Name string `json:"name"`
	Lang string `json:"lang"`
}

// FetchSpec is the typed view of one fetch directive.
type FetchSpec struct {
	From     string   `json:"from"`
	ToFolder string   `json:"to_folder"`
	ToFile   string   `json:"to_file"`
	Files    []string `json:"files"`
}

// Interpreters decodes the interpreters key into typed entries.
// Entries missing sub-fields (dropped by the whitelist) decode with
// empty strings.
func (r Record) Interpreters() []Interpreter {
	entries, ok := r[KeyInterpreters].([]any)
	if !ok {
		return nil
	}

	out := make([]Interpreter, 0, len(entries))
	for _, e := range entries {
		m, _ := e.(map[string]any)
		out = append(out, Interpreter{
			Src:  stringField(m, FieldSrc),
			Name: stringField(m, FieldName),
			Lang: stringField(m, FieldLang),
		})
	}

	return out
}

// FetchSpecs decodes the fetch key into typed download directives.
func (r Record) FetchSpecs() []FetchSpec {
	entries, ok := r[KeyFetch].([]any)
	if !ok {
		return nil
	}

	out := make([]FetchSpec, 0, len(entries))
	for _, e := range entries {
		m, _ := e.(map[string]any)
		out = append(out, FetchSpec{
			From:     stringField(m, FieldFrom),
			ToFolder: stringField(m, FieldToFolder),
			ToFile:   stringField(m, FieldToFile),
			Files:    stringList(m[FieldFiles]),
		})
	}

	return out
}

// Packages returns the packages key as a string slice, skipping any
// non-string elements.
func (r Record) Packages() []string {
	return stringList(r[KeyPackages])
}

// Plugins returns the plugins key as a string slice, skipping any
// non-string elements.
func (r Record) Plugins() []string {
	return stringList(r[KeyPlugins])
}

// ResolvedStamp returns the pyscript stamp if the record has been
// resolved.
func (r Record) ResolvedStamp() (Stamp, bool) {
	m, ok := r[KeyPyscript].(map[string]any)
	if !ok {
		return Stamp{}, false
	}

	return Stamp{
		Version: stringField(m, "version"),
		Time:    stringField(m, "time"),
	}, true
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringList(v any) []string {
	l, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(l))
	for _, e := range l {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}

	return out
}
