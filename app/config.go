package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the viewer configuration. Zero values fall back to defaults, so
// a config file only needs the fields it wants to change.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`

	// Distance is the 4D projection distance along the W axis.
	Distance float64 `yaml:"distance"`
	// CameraDistance and Scale place the 3D wireframe on the screen.
	CameraDistance float64 `yaml:"camera_distance"`
	Scale          float64 `yaml:"scale"`

	// SourceURL points at a shape server; empty means generate shapes
	// locally.
	SourceURL string  `yaml:"source_url"`
	CubeSize  float64 `yaml:"cube_size"`
	Grid      bool    `yaml:"grid"`
}

// DefaultConfig returns the built-in viewer settings.
func DefaultConfig() Config {
	return Config{
		Width:          960,
		Height:         720,
		TPS:            60,
		Distance:       5,
		CameraDistance: 12,
		Scale:          110,
		CubeSize:       1,
		Grid:           true,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path just
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Distance <= 0 {
		return fmt.Errorf("invalid projection distance %g", c.Distance)
	}
	return nil
}
