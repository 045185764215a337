// Package config loads engine settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/drawstats/internal/learning"
	"github.com/lox/drawstats/internal/recommend"
	"github.com/lox/drawstats/internal/strategy"
)

// Config represents the complete engine configuration
type Config struct {
	Seed      int64              `hcl:"seed,optional"`
	LogLevel  string             `hcl:"log_level,optional"`
	Window    int                `hcl:"window,optional"`
	Learning  *LearningSettings  `hcl:"learning,block"`
	Recommend *RecommendSettings `hcl:"recommend,block"`
}

// LearningSettings configures the iterative learning controller
type LearningSettings struct {
	Iterations int      `hcl:"iterations,optional"`
	MinDraws   int      `hcl:"min_draws,optional"`
	Interval   string   `hcl:"interval,optional"`
	Strategies []string `hcl:"strategies,optional"`
}

// RecommendSettings configures per-strategy recommendations
type RecommendSettings struct {
	MinDraws   int      `hcl:"min_draws,optional"`
	Strategies []string `hcl:"strategies,optional"`
}

// Default returns the default configuration
func Default() *Config {
	strategies := make([]string, len(strategy.All))
	for i, s := range strategy.All {
		strategies[i] = s.String()
	}

	return &Config{
		Seed:     0,
		LogLevel: "info",
		Window:   50,
		Learning: &LearningSettings{
			Iterations: learning.DefaultIterations,
			MinDraws:   learning.DefaultMinDraws,
			Interval:   "0s",
			Strategies: strategies,
		},
		Recommend: &RecommendSettings{
			MinDraws:   recommend.DefaultMinDraws,
			Strategies: append([]string(nil), strategies...),
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values from the defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults(Default())
	return &config, nil
}

func (c *Config) applyDefaults(defaults *Config) {
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Window == 0 {
		c.Window = defaults.Window
	}

	if c.Learning == nil {
		c.Learning = defaults.Learning
	} else {
		if c.Learning.Iterations == 0 {
			c.Learning.Iterations = defaults.Learning.Iterations
		}
		if c.Learning.MinDraws == 0 {
			c.Learning.MinDraws = defaults.Learning.MinDraws
		}
		if c.Learning.Interval == "" {
			c.Learning.Interval = defaults.Learning.Interval
		}
		if len(c.Learning.Strategies) == 0 {
			c.Learning.Strategies = defaults.Learning.Strategies
		}
	}

	if c.Recommend == nil {
		c.Recommend = defaults.Recommend
	} else {
		if c.Recommend.MinDraws == 0 {
			c.Recommend.MinDraws = defaults.Recommend.MinDraws
		}
		if len(c.Recommend.Strategies) == 0 {
			c.Recommend.Strategies = defaults.Recommend.Strategies
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Window < 0 {
		return fmt.Errorf("window cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.Learning.Iterations < 0 {
		return fmt.Errorf("learning iterations cannot be negative")
	}
	if c.Learning.MinDraws < 0 {
		return fmt.Errorf("learning min_draws cannot be negative")
	}
	if d, err := time.ParseDuration(c.Learning.Interval); err != nil {
		return fmt.Errorf("invalid learning interval %q: %w", c.Learning.Interval, err)
	} else if d < 0 {
		return fmt.Errorf("learning interval cannot be negative")
	}
	if _, err := strategy.ParseAll(c.Learning.Strategies); err != nil {
		return fmt.Errorf("learning strategies: %w", err)
	}

	if c.Recommend.MinDraws < 0 {
		return fmt.Errorf("recommend min_draws cannot be negative")
	}
	if _, err := strategy.ParseAll(c.Recommend.Strategies); err != nil {
		return fmt.Errorf("recommend strategies: %w", err)
	}

	return nil
}

// LearningConfig converts the learning block into a controller Config.
// Logger and Clock are left for the caller.
func (c *Config) LearningConfig() (learning.Config, error) {
	interval, err := time.ParseDuration(c.Learning.Interval)
	if err != nil {
		return learning.Config{}, fmt.Errorf("invalid learning interval: %w", err)
	}
	rotation, err := strategy.ParseAll(c.Learning.Strategies)
	if err != nil {
		return learning.Config{}, err
	}

	return learning.Config{
		Iterations: c.Learning.Iterations,
		MinDraws:   c.Learning.MinDraws,
		Rotation:   rotation,
		Interval:   interval,
		Seed:       c.Seed,
	}, nil
}

// RecommendConfig converts the recommend block into a recommend.Config.
func (c *Config) RecommendConfig() (recommend.Config, error) {
	strategies, err := strategy.ParseAll(c.Recommend.Strategies)
	if err != nil {
		return recommend.Config{}, err
	}
	return recommend.Config{
		Strategies: strategies,
		MinDraws:   c.Recommend.MinDraws,
		Seed:       c.Seed,
	}, nil
}
