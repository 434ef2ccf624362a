package cubeview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable viewer constants.
type Config struct {
	// Sensitivity is the drag gain in radians per surface height.
	Sensitivity float32 `toml:"sensitivity" yaml:"sensitivity"`

	Camera Camera `toml:"camera" yaml:"camera"`

	// ClearColor is the RGBA background.
	ClearColor [4]float32 `toml:"clear_color" yaml:"clear_color"`

	// Validate forces program validation on or off.
	// When nil, validation follows SetVerbose.
	Validate *bool `toml:"validate" yaml:"validate"`
}

// DefaultConfig returns the stock viewer settings.
func DefaultConfig() Config {
	return Config{
		Sensitivity: DefaultSensitivity,
		Camera:      DefaultCamera(),
		ClearColor:  [4]float32{0.75, 0.85, 0.8, 1.0},
	}
}

// Check reports the first setting that cannot produce a usable view.
func (c Config) Check() error {
	switch {
	case c.Sensitivity <= 0:
		return fmt.Errorf("config: sensitivity must be positive, got %v", c.Sensitivity)
	case c.Camera.Distance <= 0:
		return fmt.Errorf("config: camera distance must be positive, got %v", c.Camera.Distance)
	case c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180:
		return fmt.Errorf("config: camera fov must be in (0, 180), got %v", c.Camera.FOVDegrees)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("config: camera planes need 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	return nil
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file on top of
// DefaultConfig. Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return Config{}, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Check(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
