package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("SHAPEGEN_SEED sets seed", func(t *testing.T) {
		t.Setenv("SHAPEGEN_SEED", "77")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, uint64(77), cfg.Generation.Seed)
	})

	t.Run("invalid SHAPEGEN_SEED is ignored", func(t *testing.T) {
		t.Setenv("SHAPEGEN_SEED", "not-a-number")

		cfg := &Config{Generation: GenerationConfig{Seed: 5}}
		cfg.applyEnvOverrides()

		assert.Equal(t, uint64(5), cfg.Generation.Seed)
	})

	t.Run("SHAPEGEN_FIELD_CAPACITY sets capacity", func(t *testing.T) {
		t.Setenv("SHAPEGEN_FIELD_CAPACITY", "120")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 120, cfg.Field.Capacity)
	})

	t.Run("SHAPEGEN_LOG_LEVEL sets level", func(t *testing.T) {
		t.Setenv("SHAPEGEN_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("Load applies overrides over file values", func(t *testing.T) {
		t.Setenv("SHAPEGEN_SEED", "9")
		t.Setenv("SHAPEGEN_FIELD_CAPACITY", "")
		t.Setenv("SHAPEGEN_LOG_LEVEL", "")

		cfg, err := Load(t.TempDir() + "/missing.yaml")
		assert.NoError(t, err)
		assert.Equal(t, uint64(9), cfg.Generation.Seed)
	})
}
