package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		envLevel string
		expected string
	}{
		{
			name:     "explicit log level wins",
			config:   &Config{LogLevel: "error", Verbose: true, Quiet: true},
			expected: "error",
		},
		{
			name:     "invalid explicit level falls back to info",
			config:   &Config{LogLevel: "loud"},
			expected: "info",
		},
		{
			name:     "verbose means debug",
			config:   &Config{Verbose: true},
			expected: "debug",
		},
		{
			name:     "quiet means warn",
			config:   &Config{Quiet: true},
			expected: "warn",
		},
		{
			name:     "verbose and quiet resolves to quiet",
			config:   &Config{Verbose: true, Quiet: true},
			expected: "warn",
		},
		{
			name:     "environment variable",
			config:   &Config{},
			envLevel: "trace",
			expected: "trace",
		},
		{
			name:     "invalid environment variable falls back to info",
			config:   &Config{},
			envLevel: "loud",
			expected: "info",
		},
		{
			name:     "default is info",
			config:   &Config{},
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.envLevel)
			assert.Equal(t, tt.expected, determineLogLevel(tt.config))
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Equal(t, level, validateLogLevel(level))
	}
	assert.Equal(t, "info", validateLogLevel("verbose"))
	assert.Equal(t, "info", validateLogLevel(""))
}
