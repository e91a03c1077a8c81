package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt          = 1.0 / 60.0
	DefaultDuration    = 15.0
	DefaultSubsteps    = 10
	DefaultGravityY    = -9.8
	DefaultAutoSpawnMs = 1.0
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultFPS         = 60
)

type Config struct {
	Preset      string       `yaml:"preset"`
	Seed        int64        `yaml:"seed"`
	Dt          float64      `yaml:"dt"`
	Duration    float64      `yaml:"duration"`
	Substeps    int          `yaml:"substeps"`
	GravityY    float64      `yaml:"gravity_y"`
	Floor       bool         `yaml:"floor"`
	AutoSpawnMs float64      `yaml:"auto_spawn_ms"`
	Audio       bool         `yaml:"audio"`
	Window      WindowConfig `yaml:"window"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:      "mixed",
		Dt:          DefaultDt,
		Duration:    DefaultDuration,
		Substeps:    DefaultSubsteps,
		GravityY:    DefaultGravityY,
		Floor:       true,
		AutoSpawnMs: DefaultAutoSpawnMs,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AutoSpawnInterval converts the configured delay to a duration, falling back
// to the default when unset or invalid.
func (c *Config) AutoSpawnInterval() time.Duration {
	ms := c.AutoSpawnMs
	if ms <= 0 {
		ms = DefaultAutoSpawnMs
	}
	return time.Duration(ms * float64(time.Millisecond))
}
