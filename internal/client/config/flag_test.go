package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:        "Test1 OK",
			args:        []string{"cmd", "-a", "http://127.0.0.1:9090/api", "-b", "memory", "-s", "/tmp/x.db", "-t", "5", "-l", "debug"},
			expectPanic: false,
			expected: &Config{
				APIBaseURL:        "http://127.0.0.1:9090/api",
				CredentialBackend: "memory",
				StorePath:         "/tmp/x.db",
				RequestTimeout:    5 * time.Second,
				LogLevel:          "debug",
			},
		},
		{
			name:        "Test2 unrelated flags ignored",
			args:        []string{"cmd", "-c", "conf.json", "-t", "7"},
			expectPanic: false,
			expected:    &Config{RequestTimeout: 7 * time.Second},
		},
		{name: "Test3 incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
