// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolve

import "github.com/MKhiriev/pyconfig/models"

// Merge layers primary over secondary.
//
// For every recognized key, primary wins only when its value is both
// present and truthy for the key's kind (non-empty string, non-zero
// number, non-empty list); otherwise secondary's value is used. An
// explicitly set empty value in primary therefore loses to secondary.
// That collision policy is deliberate and pinned by tests.
//
// Extra keys are layered afterwards: secondary's first, then primary's
// overwriting on collision, so primary wins for extras whenever the
// key is present at all.
//
// When both records are empty the built-in defaults are returned; a
// fresh record is built each time so callers cannot corrupt shared
// template data.
func Merge(primary, secondary models.Record) models.Record {
	if primary.IsEmpty() && secondary.IsEmpty() {
		return models.Defaults()
	}
	if primary.IsEmpty() {
		return secondary
	}
	if secondary.IsEmpty() {
		return primary
	}

	out := models.Record{}
	for _, spec := range models.Schema() {
		if v, ok := primary[spec.Name]; ok && spec.Truthy(v) {
			out[spec.Name] = v
			continue
		}
		if v, ok := secondary[spec.Name]; ok {
			out[spec.Name] = v
		}
	}

	for k, v := range secondary {
		if !models.IsRecognized(k) {
			out[k] = v
		}
	}
	for k, v := range primary {
		if !models.IsRecognized(k) {
			out[k] = v
		}
	}

	return out
}
