package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gravity-squares/internal/physics"
)

// DefaultPath is the config file read at startup, relative to the process
// working directory. The SANDBOX_CONFIG environment variable overrides it.
const DefaultPath = "sandbox.yaml"

// Config holds everything the sandbox takes from the outside: viewport,
// body count, world forces, seeding, pacing, and debug overlays. Runtime
// packages receive these values at construction and never read files
// themselves.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Bodies int `yaml:"bodies"`

	Gravity       float64 `yaml:"gravity"`
	Damping       float64 `yaml:"damping"`
	AirResistance float64 `yaml:"air_resistance"`

	// Seed controls randomness; Seed == 0 uses a time-based seed.
	Seed int64 `yaml:"seed"`

	TargetFPS    int  `yaml:"target_fps"`
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
}

// Default returns the classic sandbox setup: 640x480, four squares, the
// stock force set, time-based seeding, 60 FPS, overlays off.
func Default() Config {
	return Config{
		Width:         640,
		Height:        480,
		Bodies:        4,
		Gravity:       physics.DefaultGravity,
		Damping:       physics.DefaultDamping,
		AirResistance: physics.DefaultAirResistance,
		Seed:          0,
		TargetFPS:     60,
	}
}

// Load reads a config from path. Missing keys keep their default values.
// If the file is missing or invalid, returns Default() and does not create
// a file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), nil
	}
	return c, nil
}

// Save writes the config to path, creating parent directories if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// World returns the force set as physics parameters.
func (c Config) World() physics.World {
	return physics.World{
		Gravity:       c.Gravity,
		Damping:       c.Damping,
		AirResistance: c.AirResistance,
	}
}

// Bounds returns the viewport as physics bounds.
func (c Config) Bounds() physics.Bounds {
	return physics.Bounds{
		Width:  float64(c.Width),
		Height: float64(c.Height),
	}
}
