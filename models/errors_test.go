package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBadConfigError_CarriesOffendingText verifies that the message
// always includes the raw text or value that triggered the failure.
func TestBadConfigError_CarriesOffendingText(t *testing.T) {
	err := NewBadConfig("unsupported config type", "yaml")

	assert.Contains(t, err.Error(), "unsupported config type")
	assert.Contains(t, err.Error(), "yaml")
}

func TestBadConfigError_NoText(t *testing.T) {
	err := NewBadConfig("something went wrong", "")
	assert.Equal(t, "something went wrong", err.Error())
}

// TestBadConfigError_MatchesSentinel verifies errors.Is matching
// through wrapping.
func TestBadConfigError_MatchesSentinel(t *testing.T) {
	err := NewBadConfig("invalid TOML config", "packages = [")
	require.ErrorIs(t, err, ErrBadConfig)

	wrapped := fmt.Errorf("resolving: %w", err)
	assert.ErrorIs(t, wrapped, ErrBadConfig)

	var badConfig *BadConfigError
	require.ErrorAs(t, wrapped, &badConfig)
	assert.Equal(t, "packages = [", badConfig.Text)
}

func TestBadConfigError_DistinctFromOtherErrors(t *testing.T) {
	assert.False(t, errors.Is(errors.New("boom"), ErrBadConfig))
}
