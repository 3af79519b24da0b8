package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// UNIFIED CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "shapegen" {
		t.Errorf("expected Name=shapegen, got %s", cfg.Name)
	}
	if cfg.Field.Capacity != 500 {
		t.Errorf("expected Capacity=500, got %d", cfg.Field.Capacity)
	}
	if cfg.Generation.MinShapes != 20 || cfg.Generation.MaxShapes != 29 {
		t.Errorf("expected shape range 20..29, got %d..%d", cfg.Generation.MinShapes, cfg.Generation.MaxShapes)
	}
	if len(cfg.Kinds) != 6 {
		t.Errorf("expected 6 kinds, got %v", cfg.Kinds)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	// Ensure no env vars interfere
	t.Setenv("SHAPEGEN_SEED", "")
	t.Setenv("SHAPEGEN_FIELD_CAPACITY", "")
	t.Setenv("SHAPEGEN_LOG_LEVEL", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "shapegen.yaml")

	cfg := DefaultConfig()
	cfg.Field.Capacity = 250
	cfg.Generation.Seed = 1234
	cfg.Kinds = []string{"Circle", "Polygon"}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assert.Equal(t, cfg, loaded)
}

func TestConfig_LoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("SHAPEGEN_SEED", "")
	t.Setenv("SHAPEGEN_FIELD_CAPACITY", "")
	t.Setenv("SHAPEGEN_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_LoadPartialKeepsDefaults(t *testing.T) {
	t.Setenv("SHAPEGEN_SEED", "")
	t.Setenv("SHAPEGEN_FIELD_CAPACITY", "")
	t.Setenv("SHAPEGEN_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "shapegen.yaml")
	data := "generation:\n  min_shapes: 3\n  max_shapes: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Generation.MinShapes)
	assert.Equal(t, 4, cfg.Generation.MaxShapes)
	assert.Equal(t, 1000, cfg.Generation.MaxAttempts)
	assert.Equal(t, 500, cfg.Field.Capacity)
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field: [not, a, map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero capacity", func(c *Config) { c.Field.Capacity = 0 }, "field.capacity"},
		{"negative min shapes", func(c *Config) { c.Generation.MinShapes = -1 }, "min_shapes"},
		{"max below min", func(c *Config) { c.Generation.MaxShapes = 5; c.Generation.MinShapes = 6 }, "max_shapes"},
		{"zero attempts", func(c *Config) { c.Generation.MaxAttempts = 0 }, "max_attempts"},
		{"one-point polyline", func(c *Config) { c.Generation.PolylinePoints.Min = 1 }, "polyline_points"},
		{"polygon max below min", func(c *Config) { c.Generation.PolygonVertices = PointRange{Min: 5, Max: 4} }, "polygon_vertices"},
		{"unknown kind", func(c *Config) { c.Kinds = []string{"Hexagon"} }, "invalid shape kind"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_ShapeField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Field.Capacity = 42
	assert.Equal(t, 42, cfg.ShapeField().Capacity)
}
