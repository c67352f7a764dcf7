package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/san-kum/sortvis/internal/array"
	"github.com/san-kum/sortvis/internal/sorting"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSize    = 100
	DefaultSeed    = 0
	DefaultFPS     = 10
	DefaultSpeed   = 1
	DefaultColumns = 3
	DefaultHeight  = 12
	DefaultTheme   = "classic"
	DefaultDataDir = ".sortvis"
)

type Config struct {
	Algorithms []string      `yaml:"algorithms"`
	Size       int           `yaml:"size"`
	Seed       int64         `yaml:"seed"`
	Order      string        `yaml:"order"`
	SameInput  bool          `yaml:"same_input"`
	Display    DisplayConfig `yaml:"display"`
	DataDir    string        `yaml:"data_dir"`
}

// DisplayConfig is consumed by drivers only; the generators never see it.
type DisplayConfig struct {
	FPS     int    `yaml:"fps"`
	Speed   int    `yaml:"speed"`
	Theme   string `yaml:"theme"`
	Columns int    `yaml:"columns"`
	Height  int    `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithms: sorting.Names(),
		Size:       DefaultSize,
		Seed:       DefaultSeed,
		Order:      string(array.OrderRandom),
		Display: DisplayConfig{
			FPS:     DefaultFPS,
			Speed:   DefaultSpeed,
			Theme:   DefaultTheme,
			Columns: DefaultColumns,
			Height:  DefaultHeight,
		},
		DataDir: DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write config %s", path)
}

func (c *Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("size must be at least 1, got %d", c.Size)
	}
	if _, err := array.ParseOrder(c.Order); err != nil {
		return err
	}
	for _, name := range c.Algorithms {
		if _, err := sorting.Lookup(name); err != nil {
			return err
		}
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Display.FPS)
	}
	if c.Display.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %d", c.Display.Speed)
	}
	if c.Display.Columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", c.Display.Columns)
	}
	if c.Display.Height < 2 {
		return fmt.Errorf("height must be at least 2, got %d", c.Display.Height)
	}
	return nil
}
