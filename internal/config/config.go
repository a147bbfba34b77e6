package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/san-kum/rayleigh/internal/pipeline"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir     = ".rayleigh"
	DefaultLogMode     = "quiet"
	DefaultPrecision   = 6
	DefaultSweepPoints = 50
	DefaultPlotHeight  = 12
	DefaultPlotWidth   = 70
)

// ErrEmptyPipeline indicates a pipelines entry with no definition.
var ErrEmptyPipeline = errors.New("config: pipeline has no definition")

type Config struct {
	DataDir   string                        `yaml:"data_dir"`
	LogMode   string                        `yaml:"log_mode"`
	Precision int                           `yaml:"precision"`
	Sweep     SweepConfig                   `yaml:"sweep"`
	Pipelines map[string]*pipeline.Pipeline `yaml:"pipelines,omitempty"`
}

type SweepConfig struct {
	Points int `yaml:"points"`
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:   DefaultDataDir,
		LogMode:   DefaultLogMode,
		Precision: DefaultPrecision,
		Sweep: SweepConfig{
			Points: DefaultSweepPoints,
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
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
	for name, p := range cfg.Pipelines {
		if p == nil {
			return nil, fmt.Errorf("config pipeline %s: %w", name, ErrEmptyPipeline)
		}
		if p.Name == "" {
			p.Name = name
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("config pipeline %s: %w", name, err)
		}
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

// Pipeline looks a pipeline up by name, preferring the config file's
// pipelines over the built-in presets. The result is a copy.
func (c *Config) Pipeline(name string) (*pipeline.Pipeline, bool) {
	if p, ok := c.Pipelines[name]; ok {
		return p.Clone(), true
	}
	if p := GetPreset(name); p != nil {
		return p, true
	}
	return nil, false
}

// PipelineNames lists the config file's pipelines followed by the presets
// they do not shadow.
func (c *Config) PipelineNames() []string {
	names := make([]string, 0, len(c.Pipelines)+len(Presets))
	seen := make(map[string]bool)
	for name := range c.Pipelines {
		names = append(names, name)
		seen[name] = true
	}
	sort.Strings(names)
	for _, name := range ListPresets() {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}
