package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/symatlab/symat/eval"
)

// Config holds the CLI configuration.
type Config struct {
	Limits LimitsConfig `toml:"limits"`
}

// LimitsConfig bounds the evaluator. A zero field keeps the built-in
// default.
type LimitsConfig struct {
	MaxDimension int `toml:"max_dimension"`
	MaxDepth     int `toml:"max_depth"`
	MaxExponent  int `toml:"max_exponent"`
}

// loadConfig reads the TOML config file.
func loadConfig(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Limits.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l LimitsConfig) validate() error {
	if l.MaxDimension < 0 || l.MaxDepth < 0 || l.MaxExponent < 0 {
		return fmt.Errorf("limits must be positive (max_dimension=%d, max_depth=%d, max_exponent=%d)",
			l.MaxDimension, l.MaxDepth, l.MaxExponent)
	}

	return nil
}

// options converts the configured limits into evaluator options, skipping
// zero fields so defaults apply.
func (l LimitsConfig) options() []eval.Option {
	var opts []eval.Option
	if l.MaxDimension > 0 {
		opts = append(opts, eval.WithMaxDimension(l.MaxDimension))
	}
	if l.MaxDepth > 0 {
		opts = append(opts, eval.WithMaxDepth(l.MaxDepth))
	}
	if l.MaxExponent > 0 {
		opts = append(opts, eval.WithMaxExponent(l.MaxExponent))
	}

	return opts
}
