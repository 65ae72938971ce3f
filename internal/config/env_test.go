package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_AllFields verifies every PYCONFIG_* variable maps onto
// its settings field.
func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("PYCONFIG_PAGE", "index.html")
	t.Setenv("PYCONFIG_SRC", "https://example.com/pyscript.toml")
	t.Setenv("PYCONFIG_INLINE", `name = "App"`)
	t.Setenv("PYCONFIG_FORMAT", "toml")
	t.Setenv("PYCONFIG_FETCH_TIMEOUT", "15s")
	t.Setenv("PYCONFIG_LOG_LEVEL", "debug")

	settings := &Settings{}
	err := parseEnv(settings)

	require.NoError(t, err)
	assert.Equal(t, "index.html", settings.Page)
	assert.Equal(t, "https://example.com/pyscript.toml", settings.Src)
	assert.Equal(t, `name = "App"`, settings.Inline)
	assert.Equal(t, "toml", settings.Format)
	assert.Equal(t, 15*time.Second, settings.FetchTimeout)
	assert.Equal(t, "debug", settings.LogLevel)
}

// TestParseEnv_PartialFields verifies unset variables leave zero
// values in place.
func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("PYCONFIG_SRC", "config.toml")

	settings := &Settings{}
	err := parseEnv(settings)

	require.NoError(t, err)
	assert.Equal(t, "config.toml", settings.Src)
	assert.Empty(t, settings.Page)
	assert.Zero(t, settings.FetchTimeout)
}

// TestParseEnv_InvalidDuration verifies a malformed duration is
// reported as an error.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("PYCONFIG_FETCH_TIMEOUT", "soon")

	err := parseEnv(&Settings{})
	assert.Error(t, err)
}
