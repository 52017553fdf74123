package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/notargets/elementcases/element"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

type Format string

const (
	Table Format = "table"
	YAML  Format = "yaml"
	JSON  Format = "json"
)

type LogConfig struct {
	Level zapcore.Level `yaml:"level"` // debug, info, warn, error
}

// Config selects which cases to enumerate and how to print them
type Config struct {
	MaxDegree int               `yaml:"max_degree"`
	Cell      *element.CellType `yaml:"cell,omitempty"` // nil enumerates all cells
	Format    Format            `yaml:"format"`
	Log       LogConfig         `yaml:"log"`
}

func Default() *Config {
	return &Config{
		MaxDegree: 4,
		Format:    Table,
		Log:       LogConfig{Level: zapcore.InfoLevel},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxDegree < 1 {
		return fmt.Errorf("%w: max_degree must be at least 1, got %d", ErrInvalid, c.MaxDegree)
	}
	switch c.Format {
	case Table, YAML, JSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}
	return nil
}
