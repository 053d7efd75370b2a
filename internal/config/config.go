// Package config loads the flexlayout tool configuration.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	flex "github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/internal/cache"
	"github.com/grindlemire/go-flex/internal/canvas"
	"github.com/grindlemire/go-flex/wire"
)

//go:embed default.yaml
var Default []byte

type (
	EngineConfig struct {
		CacheSize  int     `yaml:"cache_size"`
		Rounding   string  `yaml:"rounding"`
		PointScale float32 `yaml:"point_scale"`
	}

	OutputConfig struct {
		Format string `yaml:"format"`
		Border string `yaml:"border"`
	}

	Config struct {
		Version int           `yaml:"version"`
		Engine  EngineConfig  `yaml:"engine"`
		Output  OutputConfig  `yaml:"output"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// Only fields defined above are accepted.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration at path superimposed on the embedded
// defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := unmarshalConfig(Default, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfg, err = unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var err error
	if c.Version != 1 {
		err = multierr.Append(err, fmt.Errorf("version: unsupported %d", c.Version))
	}
	if c.Engine.CacheSize < 1 || c.Engine.CacheSize > cache.MaxCapacity {
		err = multierr.Append(err, fmt.Errorf("engine.cache_size: %d outside 1-%d", c.Engine.CacheSize, cache.MaxCapacity))
	}
	if _, e := c.rounding(); e != nil {
		err = multierr.Append(err, e)
	}
	if !(c.Engine.PointScale > 0) {
		err = multierr.Append(err, fmt.Errorf("engine.point_scale: must be positive, got %v", c.Engine.PointScale))
	}
	if _, e := wire.ParseFormat(c.Output.Format); e != nil {
		err = multierr.Append(err, fmt.Errorf("output.format: %w", e))
	}
	if _, e := canvas.ParseBorder(c.Output.Border); e != nil {
		err = multierr.Append(err, fmt.Errorf("output.border: %w", e))
	}
	err = multierr.Append(err, c.Logging.validate())
	return err
}

func (c *Config) rounding() (flex.Rounding, error) {
	switch c.Engine.Rounding {
	case "none", "":
		return flex.RoundNone, nil
	case "pixel":
		return flex.RoundPixelGrid, nil
	}
	return 0, fmt.Errorf("engine.rounding: unknown mode %q", c.Engine.Rounding)
}

// EngineOptions turns the engine section into engine options.
func (c *Config) EngineOptions() ([]flex.Option, error) {
	r, err := c.rounding()
	if err != nil {
		return nil, err
	}
	return []flex.Option{
		flex.WithCacheSize(c.Engine.CacheSize),
		flex.WithRounding(r),
		flex.WithPointScaleFactor(c.Engine.PointScale),
	}, nil
}

// Format returns the configured output format.
func (c *Config) Format() wire.Format {
	f, _ := wire.ParseFormat(c.Output.Format)
	return f
}

// Border returns the configured outline style for drawn layouts.
func (c *Config) Border() canvas.BorderStyle {
	b, _ := canvas.ParseBorder(c.Output.Border)
	return b
}

// Dump returns cfg as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
