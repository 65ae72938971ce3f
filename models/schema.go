// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Recognized top-level configuration keys.
const (
	KeyName            = "name"
	KeyDescription     = "description"
	KeyVersion         = "version"
	KeyType            = "type"
	KeyAuthorName      = "author_name"
	KeyAuthorEmail     = "author_email"
	KeyLicense         = "license"
	KeySchemaVersion   = "schema_version"
	KeyExecutionThread = "execution_thread"
	KeyInterpreters    = "interpreters"
	KeyRuntimes        = "runtimes"
	KeyPackages        = "packages"
	KeyFetch           = "fetch"
	KeyPlugins         = "plugins"

	// KeyPyscript is the reserved key under which the resolver stamps
	// its version and load timestamp. It is never user-supplied.
	KeyPyscript = "pyscript"
)

// Allowed values for the execution_thread key.
const (
	ThreadMain   = "main"
	ThreadWorker = "worker"
)

// Sub-field names of interpreter and fetch entries.
const (
	FieldSrc      = "src"
	FieldName     = "name"
	FieldLang     = "lang"
	FieldFrom     = "from"
	FieldToFolder = "to_folder"
	FieldToFile   = "to_file"
	FieldFiles    = "files"
)

// Kind is the declared wire shape of a recognized key.
type Kind int

const (
	// KindString matches a plain string value.
	KindString Kind = iota
	// KindNumber matches any numeric value (int, int64, float64).
	KindNumber
	// KindList matches any array-shaped value; element types are not
	// inspected at the top level.
	KindList
	// KindEntryList matches an array of structured entries whose
	// sub-fields are whitelisted individually.
	KindEntryList
)

// KeySpec is one row of the recognized-key table: the key name and its
// declared shape.
type KeySpec struct {
	Name string
	Kind Kind
}

// Matches reports whether v conforms to the declared shape of the key.
// Non-conforming values are dropped by the whitelist, not rejected.
func (s KeySpec) Matches(v any) bool {
	switch s.Kind {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindNumber:
		return isNumber(v)
	case KindList, KindEntryList:
		_, ok := v.([]any)
		return ok
	default:
		return false
	}
}

// Truthy reports whether v counts as "present" for merge purposes.
// Empty strings, zero numbers, and empty lists are treated as absent;
// this is the documented collision policy, not an accident.
func (s KeySpec) Truthy(v any) bool {
	switch s.Kind {
	case KindString:
		str, ok := v.(string)
		return ok && str != ""
	case KindNumber:
		return isNumber(v) && !isZeroNumber(v)
	case KindList, KindEntryList:
		l, ok := v.([]any)
		return ok && len(l) > 0
	default:
		return false
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int64, float64:
		return true
	default:
		return false
	}
}

func isZeroNumber(v any) bool {
	switch value := v.(type) {
	case int:
		return value == 0
	case int64:
		return value == 0
	case float64:
		return value == 0
	default:
		return false
	}
}

// schema lists every recognized key in declaration order. interpreters
// precedes runtimes so folded runtime entries land after explicitly
// declared interpreters.
var schema = []KeySpec{
	{Name: KeyName, Kind: KindString},
	{Name: KeyDescription, Kind: KindString},
	{Name: KeyVersion, Kind: KindString},
	{Name: KeyType, Kind: KindString},
	{Name: KeyAuthorName, Kind: KindString},
	{Name: KeyAuthorEmail, Kind: KindString},
	{Name: KeyLicense, Kind: KindString},
	{Name: KeySchemaVersion, Kind: KindNumber},
	{Name: KeyExecutionThread, Kind: KindString},
	{Name: KeyInterpreters, Kind: KindEntryList},
	{Name: KeyRuntimes, Kind: KindEntryList},
	{Name: KeyPackages, Kind: KindList},
	{Name: KeyFetch, Kind: KindEntryList},
	{Name: KeyPlugins, Kind: KindList},
}

// Schema returns the recognized-key table in declaration order.
func Schema() []KeySpec {
	return schema
}

// IsRecognized reports whether name belongs to the recognized key set.
// The pyscript stamp key counts as recognized so a user-supplied value
// never survives as an extra key.
func IsRecognized(name string) bool {
	if name == KeyPyscript {
		return true
	}
	for _, s := range schema {
		if s.Name == name {
			return true
		}
	}
	return false
}
