package whitelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pyconfig/internal/logger"
	"github.com/MKhiriev/pyconfig/models"
)

// fakeNotifier records every deprecation notice it receives.
type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Deprecated(message string) {
	n.messages = append(n.messages, message)
}

func newTestFilter() (*Filter, *fakeNotifier) {
	notify := &fakeNotifier{}
	return New(notify, logger.Nop()), notify
}

// TestApply_KeepsTypeConformingKeys verifies plain copy-through of
// recognized keys with matching shapes.
func TestApply_KeepsTypeConformingKeys(t *testing.T) {
	filter, _ := newTestFilter()

	out, err := filter.Apply(models.Record{
		models.KeyName:          "demo",
		models.KeySchemaVersion: int64(1),
		models.KeyPackages:      []any{"numpy"},
	})

	require.NoError(t, err)
	assert.Equal(t, "demo", out[models.KeyName])
	assert.Equal(t, int64(1), out[models.KeySchemaVersion])
	assert.Equal(t, []any{"numpy"}, out[models.KeyPackages])
}

// TestApply_DropsMismatchedTypesSilently verifies the type-directed
// filter: wrong shapes disappear without error.
func TestApply_DropsMismatchedTypesSilently(t *testing.T) {
	filter, _ := newTestFilter()

	out, err := filter.Apply(models.Record{
		models.KeyName:          int64(42),
		models.KeySchemaVersion: "one",
		models.KeyPackages:      "numpy",
		models.KeyFetch:         map[string]any{"from": "x"},
	})

	require.NoError(t, err)
	assert.NotContains(t, out, models.KeyName)
	assert.NotContains(t, out, models.KeySchemaVersion)
	assert.NotContains(t, out, models.KeyPackages)
	assert.NotContains(t, out, models.KeyFetch)
}

// TestApply_ExtrasPassThrough verifies unrecognized keys survive
// verbatim, whatever their shape.
func TestApply_ExtrasPassThrough(t *testing.T) {
	filter, _ := newTestFilter()

	out, err := filter.Apply(models.Record{
		"my_plugin":  map[string]any{"option": true},
		"free_form":  []any{int64(1), "two"},
		"bare_value": int64(7),
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"option": true}, out["my_plugin"])
	assert.Equal(t, []any{int64(1), "two"}, out["free_form"])
	assert.Equal(t, int64(7), out["bare_value"])
}

// ── interpreters and runtimes ─────────────────────────────────────────────────

// TestApply_InterpreterSubFieldWhitelist verifies that entry sub-fields
// are filtered individually and entries survive partial drops.
func TestApply_InterpreterSubFieldWhitelist(t *testing.T) {
	filter, _ := newTestFilter()

	out, err := filter.Apply(models.Record{
		models.KeyInterpreters: []any{
			map[string]any{
				models.FieldSrc:  "https://example.com/pyodide.js",
				models.FieldName: "pyodide",
				models.FieldLang: "python",
				"unknown_field":  "dropped",
			},
			map[string]any{
				models.FieldSrc:  int64(1),
				models.FieldName: "partial",
			},
			"not a map",
		},
	})

	require.NoError(t, err)
	entries := out[models.KeyInterpreters].([]any)
	require.Len(t, entries, 3)

	assert.Equal(t, map[string]any{
		models.FieldSrc:  "https://example.com/pyodide.js",
		models.FieldName: "pyodide",
		models.FieldLang: "python",
	}, entries[0])
	assert.Equal(t, map[string]any{models.FieldName: "partial"}, entries[1])
	assert.Equal(t, map[string]any{}, entries[2])
}

// TestApply_RuntimesFoldIntoInterpreters verifies the deprecated alias
// never appears in output and its entries land under interpreters,
// after any explicitly declared ones.
func TestApply_RuntimesFoldIntoInterpreters(t *testing.T) {
	filter, notify := newTestFilter()

	out, err := filter.Apply(models.Record{
		models.KeyInterpreters: []any{
			map[string]any{models.FieldName: "declared"},
		},
		models.KeyRuntimes: []any{
			map[string]any{models.FieldName: "legacy"},
		},
	})

	require.NoError(t, err)
	assert.NotContains(t, out, models.KeyRuntimes)

	entries := out[models.KeyInterpreters].([]any)
	require.Len(t, entries, 2)
	assert.Equal(t, "declared", entries[0].(map[string]any)[models.FieldName])
	assert.Equal(t, "legacy", entries[1].(map[string]any)[models.FieldName])

	require.Len(t, notify.messages, 1)
	assert.Contains(t, notify.messages[0], models.KeyRuntimes)
	assert.Contains(t, notify.messages[0], models.KeyInterpreters)
}

func TestApply_RuntimesOnly(t *testing.T) {
	filter, notify := newTestFilter()

	out, err := filter.Apply(models.Record{
		models.KeyRuntimes: []any{map[string]any{models.FieldName: "legacy"}},
	})

	require.NoError(t, err)
	assert.NotContains(t, out, models.KeyRuntimes)
	assert.Len(t, out[models.KeyInterpreters].([]any), 1)
	assert.Len(t, notify.messages, 1)
}

// TestApply_EmptyRuntimesNoNotice verifies the notice fires only for a
// non-empty runtimes list.
func TestApply_EmptyRuntimesNoNotice(t *testing.T) {
	filter, notify := newTestFilter()

	_, err := filter.Apply(models.Record{models.KeyRuntimes: []any{}})

	require.NoError(t, err)
	assert.Empty(t, notify.messages)
}

// ── fetch ─────────────────────────────────────────────────────────────────────

// TestApply_FetchSubFieldWhitelist verifies string and list sub-field
// filtering of fetch directives.
func TestApply_FetchSubFieldWhitelist(t *testing.T) {
	filter, _ := newTestFilter()

	out, err := filter.Apply(models.Record{
		models.KeyFetch: []any{
			map[string]any{
				models.FieldFrom:     "https://example.com/data/",
				models.FieldToFolder: "data",
				models.FieldToFile:   int64(9),
				models.FieldFiles:    []any{"a.csv"},
			},
			map[string]any{
				models.FieldFiles: "not-a-list",
			},
		},
	})

	require.NoError(t, err)
	entries := out[models.KeyFetch].([]any)
	require.Len(t, entries, 2)

	assert.Equal(t, map[string]any{
		models.FieldFrom:     "https://example.com/data/",
		models.FieldToFolder: "data",
		models.FieldFiles:    []any{"a.csv"},
	}, entries[0])
	assert.Equal(t, map[string]any{}, entries[1])
}

// ── execution_thread ──────────────────────────────────────────────────────────

func TestApply_ExecutionThreadAllowedValues(t *testing.T) {
	filter, _ := newTestFilter()

	for _, thread := range []string{models.ThreadMain, models.ThreadWorker} {
		out, err := filter.Apply(models.Record{models.KeyExecutionThread: thread})
		require.NoError(t, err)
		assert.Equal(t, thread, out[models.KeyExecutionThread])
	}
}

// TestApply_ExecutionThreadRejected verifies the single hard failure
// of the whitelist, with the offending value in the message.
func TestApply_ExecutionThreadRejected(t *testing.T) {
	filter, _ := newTestFilter()

	out, err := filter.Apply(models.Record{models.KeyExecutionThread: "background"})

	assert.Nil(t, out)
	require.ErrorIs(t, err, models.ErrBadConfig)
	assert.Contains(t, err.Error(), "background")
}

// TestApply_ExecutionThreadWrongTypeDropped verifies that a non-string
// execution_thread is a silent drop, not a hard failure.
func TestApply_ExecutionThreadWrongTypeDropped(t *testing.T) {
	filter, _ := newTestFilter()

	out, err := filter.Apply(models.Record{models.KeyExecutionThread: int64(1)})

	require.NoError(t, err)
	assert.NotContains(t, out, models.KeyExecutionThread)
}
