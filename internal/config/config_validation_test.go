package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestSettings_Validate covers every validation rule of the merged
// tool settings.
func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  error
	}{
		{name: "empty settings", settings: Settings{}},
		{name: "page only", settings: Settings{Page: "index.html"}},
		{name: "src and inline together", settings: Settings{Src: "a.toml", Inline: "name = \"x\""}},
		{name: "toml format", settings: Settings{Format: "toml"}},
		{name: "json format", settings: Settings{Format: "json"}},
		{name: "positive timeout", settings: Settings{FetchTimeout: time.Second}},
		{
			name:     "page with src",
			settings: Settings{Page: "index.html", Src: "a.toml"},
			wantErr:  ErrConflictingSources,
		},
		{
			name:     "page with inline",
			settings: Settings{Page: "index.html", Inline: "name = \"x\""},
			wantErr:  ErrConflictingSources,
		},
		{
			name:     "unsupported format",
			settings: Settings{Format: "yaml"},
			wantErr:  ErrUnsupportedFormat,
		},
		{
			name:     "negative timeout",
			settings: Settings{FetchTimeout: -time.Second},
			wantErr:  ErrNegativeTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
