package contract

import (
	"testing"
	"time"

	"github.com/gitwrap/gitwrap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Token:     "ghp_test",
		Year:      2025,
		Output:    "text",
		Precision: 1,
		Emoji:     "yes",
		Color:     "no",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(*ConfigRawInput) {},
			expectError: false,
		},
		{
			name:        "missing token",
			mutate:      func(in *ConfigRawInput) { in.Token = "   " },
			expectError: true,
		},
		{
			name:        "year before first commit ever",
			mutate:      func(in *ConfigRawInput) { in.Year = 2007 },
			expectError: true,
		},
		{
			name:        "year in the future",
			mutate:      func(in *ConfigRawInput) { in.Year = fixedNow.Year() + 1 },
			expectError: true,
		},
		{
			name:        "boundary years accepted",
			mutate:      func(in *ConfigRawInput) { in.Year = 2008 },
			expectError: false,
		},
		{
			name:        "invalid output mode",
			mutate:      func(in *ConfigRawInput) { in.Output = "yaml" },
			expectError: true,
		},
		{
			name:        "output mode case insensitive",
			mutate:      func(in *ConfigRawInput) { in.Output = "JSON" },
			expectError: false,
		},
		{
			name:        "negative precision",
			mutate:      func(in *ConfigRawInput) { in.Precision = -1 },
			expectError: true,
		},
		{
			name:        "negative width",
			mutate:      func(in *ConfigRawInput) { in.Width = -5 },
			expectError: true,
		},
		{
			name:        "invalid toggle",
			mutate:      func(in *ConfigRawInput) { in.Emoji = "maybe" },
			expectError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input, fixedNow)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	input := validInput()
	input.Year = 0

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input, fixedNow))

	// Year 0 means the current year relative to now.
	assert.Equal(t, fixedNow.Year(), cfg.Year)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseEmojis)
	assert.False(t, cfg.UseColors)
}

func TestProcessAndValidateTrimsToken(t *testing.T) {
	input := validInput()
	input.Token = "  ghp_test  "

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input, fixedNow))
	assert.Equal(t, "ghp_test", cfg.Token)
}

func TestParseToggle(t *testing.T) {
	for _, value := range []string{"yes", "TRUE", "1", "on"} {
		enabled, err := parseToggle("emoji", value)
		require.NoError(t, err)
		assert.True(t, enabled, value)
	}
	for _, value := range []string{"no", "False", "0", "off"} {
		enabled, err := parseToggle("emoji", value)
		require.NoError(t, err)
		assert.False(t, enabled, value)
	}
	_, err := parseToggle("emoji", "definitely")
	assert.Error(t, err)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Token: "ghp_test", Year: 2026, Output: schema.JSONOut}
	clone := cfg.Clone()

	clone.Year = 2020
	assert.Equal(t, 2026, cfg.Year)
	assert.Equal(t, schema.JSONOut, clone.Output)
}
