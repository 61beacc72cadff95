package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/njvack/gazehound/render"
)

// Config enumerates every recognized viewer option. Defaults are
// overlaid by an optional YAML file, then by command-line flags.
type Config struct {
	TargetFPS      int     `yaml:"target_fps"`
	Speed          float64 `yaml:"speed"`
	Scheme         string  `yaml:"scheme"`
	StimulusWidth  float64 `yaml:"stimulus_width"`
	StimulusHeight float64 `yaml:"stimulus_height"`
	PointRadius    int     `yaml:"point_radius"`

	// Prefixes are carried for the image-loading collaborator; the
	// viewer itself never touches image pixels.
	StimulusPrefix string `yaml:"stimulus_prefix"`
	ThumbPrefix    string `yaml:"thumb_prefix"`
}

func DefaultConfig() Config {
	return Config{
		TargetFPS:      30,
		Speed:          1.0,
		Scheme:         "classic",
		StimulusWidth:  800,
		StimulusHeight: 600,
		PointRadius:    1,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TargetFPS <= 0 {
		return fmt.Errorf("target_fps must be a positive integer (got %d)", c.TargetFPS)
	}
	if !(c.Speed > 0) {
		return fmt.Errorf("speed must be positive (got %v)", c.Speed)
	}
	if _, err := render.Scheme(c.Scheme); err != nil {
		return err
	}
	if c.StimulusWidth <= 0 || c.StimulusHeight <= 0 {
		return fmt.Errorf("stimulus dimensions must be positive (got %vx%v)", c.StimulusWidth, c.StimulusHeight)
	}
	if c.PointRadius < 0 {
		return fmt.Errorf("point_radius must not be negative (got %d)", c.PointRadius)
	}
	return nil
}
