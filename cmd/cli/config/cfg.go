package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lucax88x/ordklocka/internal/homedir"
	"github.com/lucax88x/ordklocka/internal/power"
	"github.com/lucax88x/ordklocka/internal/sketchybar"
	"gopkg.in/yaml.v2"
)

const FileName = "config.yaml"

type Layout = string

const (
	LayoutStacked Layout = "stacked"
	LayoutInline  Layout = "inline"
)

type LowPowerCfg struct {
	Threshold float64       `yaml:"threshold"`
	Refresh   time.Duration `yaml:"refresh"`
}

type ColorsCfg struct {
	Label string `yaml:"label"`
}

type Cfg struct {
	LogLevel  string        `yaml:"log_level"`
	Position  string        `yaml:"position"`
	Layout    Layout        `yaml:"layout"`
	ManageBar bool          `yaml:"manage_bar"`
	Refresh   time.Duration `yaml:"refresh"`
	LowPower  LowPowerCfg   `yaml:"low_power"`
	Colors    ColorsCfg     `yaml:"colors"`
}

func Default() *Cfg {
	return &Cfg{
		LogLevel: "info",
		Position: sketchybar.PositionRight,
		Layout:   LayoutStacked,
		Refresh:  time.Second,
	}
}

func Path() (string, error) {
	dir, err := homedir.Get()

	if err != nil {
		//nolint:errorlint // no wrap
		return "", fmt.Errorf("config: error getting home dir. %v", err)
	}

	return filepath.Join(dir, FileName), nil
}

// ReadYaml reads the config at path. A missing file yields the defaults.
func ReadYaml(path string) (*Cfg, error) {
	cfg := Default()

	yamlData, err := os.ReadFile(path)

	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		//nolint:errorlint // no wrap
		return nil, fmt.Errorf("config: could not read file. %v", err)
	}

	err = yaml.Unmarshal(yamlData, cfg)

	if err != nil {
		//nolint:errorlint // no wrap
		return nil, fmt.Errorf("config: could not unmarshal cfg. %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Cfg) Validate() error {
	if !sketchybar.IsPosition(c.Position) {
		return fmt.Errorf("config: unknown position '%s'", c.Position)
	}

	if c.Layout != LayoutStacked && c.Layout != LayoutInline {
		return fmt.Errorf("config: unknown layout '%s'", c.Layout)
	}

	if c.Refresh <= 0 {
		return fmt.Errorf("config: refresh must be positive, got %s", c.Refresh)
	}

	if c.LowPower.Threshold < 0 || c.LowPower.Threshold > 100 {
		return fmt.Errorf("config: low_power threshold must be a percentage, got %.0f", c.LowPower.Threshold)
	}

	return nil
}

func (c *Cfg) Power() power.Settings {
	return power.Settings{
		Normal:    c.Refresh,
		Low:       c.LowPower.Refresh,
		Threshold: c.LowPower.Threshold,
	}
}
