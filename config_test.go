package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target_fps: 60\nscheme: dusk\nstimulus_prefix: img/\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.TargetFPS)
	assert.Equal(t, "dusk", cfg.Scheme)
	assert.Equal(t, "img/", cfg.StimulusPrefix)
	// untouched fields keep their defaults
	assert.Equal(t, 1.0, cfg.Speed)
	assert.Equal(t, 800.0, cfg.StimulusWidth)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfigValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.TargetFPS = 0 }},
		{"zero speed", func(c *Config) { c.Speed = 0 }},
		{"negative speed", func(c *Config) { c.Speed = -2 }},
		{"unknown scheme", func(c *Config) { c.Scheme = "plasma" }},
		{"zero width", func(c *Config) { c.StimulusWidth = 0 }},
		{"negative radius", func(c *Config) { c.PointRadius = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
