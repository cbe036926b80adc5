package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/sortviz/internal/algorithms"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBars        = 100
	DefaultAlgorithm   = "bubble"
	DefaultSpeed       = 15
	DefaultIdleDelayMs = 10
	DefaultWidth       = 1000
	DefaultHeight      = 600
	DefaultHeadroom    = 40
	DefaultTitle       = "Sorting Visualizer"
	DefaultTheme       = "classic"
	DefaultDataDir     = ".sortviz"

	MaxBars = 2000
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Bars        int          `yaml:"bars"`
	Algorithm   string       `yaml:"algorithm"`
	Speed       int          `yaml:"speed"`
	IdleDelayMs int          `yaml:"idle_delay_ms"`
	Seed        int64        `yaml:"seed"`
	Theme       string       `yaml:"theme"`
	DataDir     string       `yaml:"data_dir"`
	Window      WindowConfig `yaml:"window"`
	Sound       SoundConfig  `yaml:"sound"`
}

type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	Headroom int    `yaml:"headroom"`
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	MinHz   float64 `yaml:"min_hz"`
	MaxHz   float64 `yaml:"max_hz"`
	Volume  float64 `yaml:"volume"`
}

func DefaultConfig() *Config {
	return &Config{
		Bars:        DefaultBars,
		Algorithm:   DefaultAlgorithm,
		Speed:       DefaultSpeed,
		IdleDelayMs: DefaultIdleDelayMs,
		Theme:       DefaultTheme,
		DataDir:     DefaultDataDir,
		Window: WindowConfig{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			Title:    DefaultTitle,
			Headroom: DefaultHeadroom,
		},
		Sound: SoundConfig{
			MinHz:  120,
			MaxHz:  1200,
			Volume: 0.2,
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
	if err := cfg.Validate(); err != nil {
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

func (c *Config) Validate() error {
	if c.Bars < 1 || c.Bars > MaxBars {
		return fmt.Errorf("%w: bars must be in [1, %d], got %d", ErrInvalidConfig, MaxBars, c.Bars)
	}
	if _, err := algorithms.ParseKind(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Speed < 1 || c.Speed > 100 {
		return fmt.Errorf("%w: speed must be in [1, 100], got %d", ErrInvalidConfig, c.Speed)
	}
	if c.IdleDelayMs < 1 {
		return fmt.Errorf("%w: idle_delay_ms must be positive", ErrInvalidConfig)
	}
	if c.Window.Width < 1 || c.Window.Height <= c.Window.Headroom {
		return fmt.Errorf("%w: window %dx%d too small for headroom %d", ErrInvalidConfig, c.Window.Width, c.Window.Height, c.Window.Headroom)
	}
	if c.Sound.Enabled && (c.Sound.MinHz <= 0 || c.Sound.MaxHz <= c.Sound.MinHz) {
		return fmt.Errorf("%w: sound range %.0f-%.0f Hz", ErrInvalidConfig, c.Sound.MinHz, c.Sound.MaxHz)
	}
	return nil
}

func (c *Config) Kind() algorithms.Kind {
	k, _ := algorithms.ParseKind(c.Algorithm)
	return k
}

func (c *Config) IdleDelay() time.Duration {
	return time.Duration(c.IdleDelayMs) * time.Millisecond
}

// SeedOrNow returns the configured seed, or a time-based one when unset.
func (c *Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
