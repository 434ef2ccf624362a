package cubeview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Check())
	assert.Equal(t, float32(4), cfg.Sensitivity)
	assert.Equal(t, float32(8), cfg.Camera.Distance)
	assert.Equal(t, float32(45), cfg.Camera.FOVDegrees)
	assert.Equal(t, float32(0.1), cfg.Camera.Near)
	assert.Equal(t, float32(1000), cfg.Camera.Far)
	assert.Nil(t, cfg.Validate)
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeConfig(t, "viewer.toml", `
sensitivity = 2.5
validate = true

[camera]
distance = 12.0
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, float32(2.5), cfg.Sensitivity)
	assert.Equal(t, float32(12), cfg.Camera.Distance)
	// Unset keys keep their defaults.
	assert.Equal(t, float32(45), cfg.Camera.FOVDegrees)
	assert.Equal(t, DefaultConfig().ClearColor, cfg.ClearColor)
	require.NotNil(t, cfg.Validate)
	assert.True(t, *cfg.Validate)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfig(t, "viewer.yaml", `
sensitivity: 6
camera:
  fov_degrees: 60
  far: 50
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, float32(6), cfg.Sensitivity)
	assert.Equal(t, float32(60), cfg.Camera.FOVDegrees)
	assert.Equal(t, float32(50), cfg.Camera.Far)
	assert.Equal(t, float32(8), cfg.Camera.Distance)
}

func TestLoadConfig_EmptyYAMLKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"unknown toml key", "a.toml", "sensitivty = 3\n"},
		{"unknown yaml key", "a.yaml", "camra:\n  distance: 3\n"},
		{"bad toml syntax", "a.toml", "sensitivity = = 3\n"},
		{"zero sensitivity", "a.toml", "sensitivity = 0.0\n"},
		{"near beyond far", "a.yaml", "camera:\n  near: 10\n  far: 5\n"},
		{"fov too wide", "a.toml", "[camera]\nfov_degrees = 180.0\n"},
		{"negative distance", "a.yaml", "camera:\n  distance: -1\n"},
		{"unsupported extension", "a.json", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.file, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
