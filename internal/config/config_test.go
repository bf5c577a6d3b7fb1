package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapcolor/internal/config"
)

func noEnv(string) (string, bool) { return "", false }

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapcolor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.LoadWithEnv("", noEnv)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := config.LoadWithEnv(filepath.Join(t.TempDir(), "absent.yaml"), noEnv)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
addr: ":9000"
max_steps: 5000
request_timeout: 2s
log_format: json
`)
	cfg, err := config.LoadWithEnv(path, envOf(map[string]string{
		"MAPCOLOR_ADDR":        ":9100",
		"MAPCOLOR_MAX_COLORS":  "8",
		"MAPCOLOR_CORS_ORIGIN": "https://maps.example",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Addr, "env wins over file")
	assert.Equal(t, 5000, cfg.MaxSteps)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8, cfg.MaxColors, "weakly typed from string")
	assert.Equal(t, "https://maps.example", cfg.CORSOrigin)
	assert.Equal(t, config.Default().MaxRegions, cfg.MaxRegions, "untouched keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.LoadWithEnv(writeFile(t, "adress: typo\n"), noEnv)
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.LoadWithEnv(writeFile(t, "addr: [unclosed\n"), noEnv)
	assert.Error(t, err)

	_, err = config.LoadWithEnv("", envOf(map[string]string{"MAPCOLOR_REQUEST_TIMEOUT": "soon"}))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.MaxSteps = 0
	cfg.LogFormat = "xml"
	cfg.RequestTimeout = -time.Second

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_steps")
	assert.Contains(t, err.Error(), "log_format")
	assert.Contains(t, err.Error(), "request_timeout")
}
