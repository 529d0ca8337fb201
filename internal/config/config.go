// Package config loads hexmap settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/talgya/hexmap/internal/world"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all hexmap configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Noise   NoiseConfig   `yaml:"noise"`
	Terrain TerrainConfig `yaml:"terrain"`
	Log     LogConfig     `yaml:"log"`
	Journal JournalConfig `yaml:"journal"`
}

// GridConfig sizes the grid.
type GridConfig struct {
	ChunkCountX  int    `yaml:"chunk_count_x"`
	ChunkCountZ  int    `yaml:"chunk_count_z"`
	ChunkSizeX   int    `yaml:"chunk_size_x"`
	ChunkSizeZ   int    `yaml:"chunk_size_z"`
	Seed         int64  `yaml:"seed"`
	DefaultColor string `yaml:"default_color"` // Hex, e.g. "#ffffff"
}

// NoiseConfig controls height perturbation.
type NoiseConfig struct {
	Enabled bool    `yaml:"enabled"`
	Scale   float64 `yaml:"scale"`
}

// TerrainConfig controls optional noise sculpting of a fresh grid.
type TerrainConfig struct {
	Sculpt       bool    `yaml:"sculpt"`
	MaxElevation int     `yaml:"max_elevation"`
	SeaLevel     int     `yaml:"sea_level"`
	Octaves      int     `yaml:"octaves"`
	Frequency    float64 `yaml:"frequency"`
	Persistence  float64 `yaml:"persistence"`
	Rivers       int     `yaml:"rivers"`
}

// LogConfig selects log verbosity and output format.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // auto, text, json
}

// JournalConfig points at the SQLite edit journal. An empty path disables it.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	sculpt := world.DefaultSculptConfig()
	return Config{
		Grid: GridConfig{
			ChunkCountX:  4,
			ChunkCountZ:  3,
			ChunkSizeX:   world.ChunkSizeX,
			ChunkSizeZ:   world.ChunkSizeZ,
			Seed:         1234,
			DefaultColor: "#ffffff",
		},
		Noise: NoiseConfig{
			Enabled: true,
			Scale:   world.NoiseScale,
		},
		Terrain: TerrainConfig{
			Sculpt:       false,
			MaxElevation: sculpt.MaxElevation,
			SeaLevel:     sculpt.SeaLevel,
			Octaves:      sculpt.Octaves,
			Frequency:    sculpt.Frequency,
			Persistence:  sculpt.Persistence,
			Rivers:       sculpt.Rivers,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load reads configuration from a YAML file. Keys missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	g := c.Grid
	if g.ChunkCountX <= 0 || g.ChunkCountZ <= 0 || g.ChunkSizeX <= 0 || g.ChunkSizeZ <= 0 {
		return fmt.Errorf("%w: grid dimensions must be positive", ErrInvalid)
	}
	if _, err := colorful.Hex(g.DefaultColor); err != nil {
		return fmt.Errorf("%w: default_color %q: %v", ErrInvalid, g.DefaultColor, err)
	}
	if c.Noise.Enabled && c.Noise.Scale <= 0 {
		return fmt.Errorf("%w: noise scale must be positive", ErrInvalid)
	}
	if c.Terrain.MaxElevation < 0 || c.Terrain.Octaves < 0 || c.Terrain.Rivers < 0 {
		return fmt.Errorf("%w: terrain values must not be negative", ErrInvalid)
	}
	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// WorldConfig builds the grid construction config. The region factory is
// left for the caller.
func (c *Config) WorldConfig() (world.Config, error) {
	color, err := colorful.Hex(c.Grid.DefaultColor)
	if err != nil {
		return world.Config{}, fmt.Errorf("%w: default_color: %v", ErrInvalid, err)
	}
	wc := world.Config{
		ChunkCountX:  c.Grid.ChunkCountX,
		ChunkCountZ:  c.Grid.ChunkCountZ,
		ChunkSizeX:   c.Grid.ChunkSizeX,
		ChunkSizeZ:   c.Grid.ChunkSizeZ,
		Seed:         c.Grid.Seed,
		DefaultColor: color,
	}
	if c.Noise.Enabled {
		wc.Sampler = world.NewSimplexSampler(c.Grid.Seed, c.Noise.Scale)
	}
	return wc, nil
}

// SculptConfig returns terrain seeding parameters, seeded from the grid seed.
func (c *Config) SculptConfig() world.SculptConfig {
	t := c.Terrain
	return world.SculptConfig{
		Seed:         c.Grid.Seed,
		MaxElevation: t.MaxElevation,
		SeaLevel:     t.SeaLevel,
		Octaves:      t.Octaves,
		Frequency:    t.Frequency,
		Persistence:  t.Persistence,
		Rivers:       t.Rivers,
	}
}
