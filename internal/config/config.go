package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/playback"
)

const (
	DefaultAlgorithm     = "bubble sort"
	DefaultTickInterval  = 200 * time.Millisecond
	DefaultFrameInterval = 50 * time.Millisecond
	DefaultTheme         = "default"

	MaxSize = 4096
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Algorithm     string        `yaml:"algorithm"`
	Mode          string        `yaml:"mode"`
	TickInterval  time.Duration `yaml:"tick_interval"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	Size          int           `yaml:"size"`
	Seed          int64         `yaml:"seed"`
	AutoPlay      bool          `yaml:"auto_play"`
	Theme         string        `yaml:"theme"`
	LogFile       string        `yaml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm:     DefaultAlgorithm,
		Mode:          playback.Buffered.String(),
		TickInterval:  DefaultTickInterval,
		FrameInterval: DefaultFrameInterval,
		AutoPlay:      true,
		Theme:         DefaultTheme,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PlaybackMode parses the configured mode.
func (c *Config) PlaybackMode() (playback.Mode, error) {
	return playback.ParseMode(c.Mode)
}

func (c *Config) Validate() error {
	if _, err := experiment.Lookup(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.PlaybackMode(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval must be positive, got %s", ErrInvalidConfig, c.FrameInterval)
	}
	if c.Size < 0 || c.Size > MaxSize {
		return fmt.Errorf("%w: size must be between 0 and %d, got %d", ErrInvalidConfig, MaxSize, c.Size)
	}
	return nil
}
