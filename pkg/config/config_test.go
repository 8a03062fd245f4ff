package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricing.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "pricing", cfg.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 100000, cfg.Pricing.DefaultPaths)
	assert.Equal(t, 1000, cfg.Pricing.DefaultSteps)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadOverridesFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
service_name = "pricing-test"
environment = "prod"

[http]
port = 9000

[pricing]
default_paths = 5000
seed = 42
`))
	require.NoError(t, err)

	assert.Equal(t, "pricing-test", cfg.ServiceName)
	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, 5000, cfg.Pricing.DefaultPaths)
	assert.Equal(t, uint64(42), cfg.Pricing.Seed)
	// 未覆盖的字段保持默认值
	assert.Equal(t, 1000, cfg.Pricing.DefaultSteps)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "pricing", cfg.ServiceName)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad http port", "[http]\nport = -1\n"},
		{"bad pricing paths", "[pricing]\ndefault_paths = 0\n"},
		{"bad pricing steps", "[pricing]\ndefault_steps = -10\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}
