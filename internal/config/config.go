package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCoefficient = 1.0
	DefaultLang        = "en"
	DefaultLogLevel    = "info"
	DefaultFrom        = -2.0
	DefaultTo          = 2.0
	DefaultSamples     = 101
	DefaultWidth       = 70
	DefaultHeight      = 15
)

var ErrInvalid = errors.New("config: invalid value")

// Languages the shell has message catalogs for.
var Languages = []string{"en", "ru"}

type Config struct {
	Coefficient float64    `yaml:"coefficient"`
	Lang        string     `yaml:"lang"`
	LogLevel    string     `yaml:"log_level"`
	Plot        PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	From    float64 `yaml:"from"`
	To      float64 `yaml:"to"`
	Samples int     `yaml:"samples"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Coefficient: DefaultCoefficient,
		Lang:        DefaultLang,
		LogLevel:    DefaultLogLevel,
		Plot: PlotConfig{
			From:    DefaultFrom,
			To:      DefaultTo,
			Samples: DefaultSamples,
			Width:   DefaultWidth,
			Height:  DefaultHeight,
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
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
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

// Validate checks everything except the coefficient; a zero coefficient is
// handed to the model, which falls back and warns on its own.
func (c *Config) Validate() error {
	if !knownLang(c.Lang) {
		return fmt.Errorf("%w: lang %q (available: %v)", ErrInvalid, c.Lang, Languages)
	}
	if c.Plot.Samples < 2 {
		return fmt.Errorf("%w: plot.samples must be at least 2, got %d", ErrInvalid, c.Plot.Samples)
	}
	if c.Plot.From == c.Plot.To {
		return fmt.Errorf("%w: plot range is empty (%g)", ErrInvalid, c.Plot.From)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalid, c.Plot.Width, c.Plot.Height)
	}
	return nil
}

func knownLang(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}
