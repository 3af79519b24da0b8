package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"shapegen/internal/shape"
)

// DefaultPath is the config file the CLI reads when --config is not given.
const DefaultPath = "shapegen.yaml"

// Config holds all shapegen configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Coordinate field every shape must fit in
	Field FieldConfig `yaml:"field"`

	// Random generation
	Generation GenerationConfig `yaml:"generation"`

	// Shape kinds registered with the factory, empty = all
	Kinds []string `yaml:"kinds"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// FieldConfig configures the bounded coordinate space.
type FieldConfig struct {
	Capacity int `yaml:"capacity"` // half-width, coordinates live in [-capacity, capacity]
}

// GenerationConfig configures a generation run.
type GenerationConfig struct {
	MinShapes   int    `yaml:"min_shapes"`
	MaxShapes   int    `yaml:"max_shapes"`
	MaxAttempts int    `yaml:"max_attempts"` // regenerations per shape before giving up
	Seed        uint64 `yaml:"seed"`         // 0 = seed from the clock

	PolylinePoints  PointRange `yaml:"polyline_points"`
	PolygonVertices PointRange `yaml:"polygon_vertices"`
}

// PointRange is an inclusive count range.
type PointRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "shapegen",
		Version: "1.0.0",

		Field: FieldConfig{
			Capacity: shape.DefaultCapacity,
		},

		Generation: GenerationConfig{
			MinShapes:       20,
			MaxShapes:       29,
			MaxAttempts:     1000,
			PolylinePoints:  PointRange{Min: 2, Max: 11},
			PolygonVertices: PointRange{Min: 3, Max: 12},
		},

		Kinds: shape.Kinds(),

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. Unparseable
// numbers are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHAPEGEN_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Generation.Seed = seed
		}
	}
	if v := os.Getenv("SHAPEGEN_FIELD_CAPACITY"); v != "" {
		if capacity, err := strconv.Atoi(v); err == nil {
			c.Field.Capacity = capacity
		}
	}
	if v := os.Getenv("SHAPEGEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate rejects settings under which generation cannot succeed.
func (c *Config) Validate() error {
	if c.Field.Capacity < 1 {
		return fmt.Errorf("field.capacity must be >= 1, got %d", c.Field.Capacity)
	}

	g := c.Generation
	if g.MinShapes < 0 {
		return fmt.Errorf("generation.min_shapes must be >= 0, got %d", g.MinShapes)
	}
	if g.MaxShapes < g.MinShapes {
		return fmt.Errorf("generation.max_shapes (%d) must be >= min_shapes (%d)", g.MaxShapes, g.MinShapes)
	}
	if g.MaxAttempts < 1 {
		return fmt.Errorf("generation.max_attempts must be >= 1, got %d", g.MaxAttempts)
	}
	if err := g.PolylinePoints.validate("generation.polyline_points", 2); err != nil {
		return err
	}
	if err := g.PolygonVertices.validate("generation.polygon_vertices", 3); err != nil {
		return err
	}

	known := shape.Kinds()
	for _, k := range c.Kinds {
		if !slices.Contains(known, k) {
			return fmt.Errorf("invalid shape kind: %s (valid: %v)", k, known)
		}
	}

	return c.Logging.Validate()
}

func (r PointRange) validate(name string, floor int) error {
	if r.Min < floor {
		return fmt.Errorf("%s.min must be >= %d, got %d", name, floor, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s.max (%d) must be >= min (%d)", name, r.Max, r.Min)
	}
	return nil
}

// ShapeField returns the configured field.
func (c *Config) ShapeField() shape.Field {
	return shape.Field{Capacity: c.Field.Capacity}
}
