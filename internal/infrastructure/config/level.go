package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LevelConfig is a level layout loaded from levels/<name>.yaml
type LevelConfig struct {
	Name    string        `yaml:"name"`
	Seed    int64         `yaml:"seed"` // bird queue seed, 0 picks one at startup
	Pigs    []PlacementXY `yaml:"pigs"`
	Columns []PlacementXY `yaml:"columns"`
}

// PlacementXY is a body center in world coordinates (y up)
type PlacementXY struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ParseLevel decodes, defaults and validates a level document.
// name is used for defaults and error messages.
func ParseLevel(name string, data []byte) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	cfg.applyDefaults(name)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", name, err)
	}
	return &cfg, nil
}

func (c *LevelConfig) applyDefaults(name string) {
	if c.Name == "" {
		c.Name = name
	}
}

// Validate checks the level has something to hit and that every
// body sits above the ground line.
func (c *LevelConfig) Validate() error {
	if len(c.Pigs) == 0 {
		return fmt.Errorf("pigs: at least one pig is required")
	}
	for i, p := range c.Pigs {
		if p.Y <= 0 {
			return fmt.Errorf("pigs[%d]: y must be positive, got %.1f", i, p.Y)
		}
	}
	for i, p := range c.Columns {
		if p.Y <= 0 {
			return fmt.Errorf("columns[%d]: y must be positive, got %.1f", i, p.Y)
		}
	}
	return nil
}
