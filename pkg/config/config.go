package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/confdiff-inc/confdiff-engine/pkg/compare"
)

// DefaultFile is the optional YAML config file read by Load.
const DefaultFile = "config.yaml"

// Config holds engine-level comparison defaults. Configuration can come from
// a YAML file (config.yaml) or environment variables; environment variables
// always override YAML values. Every knob here only seeds default Options —
// per-comparison options passed by callers win.
type Config struct {
	// MaxDiffChars is the char-diff length guard: fields whose rendered
	// values exceed it are reported as differing without an edit script.
	MaxDiffChars int `yaml:"max_diff_chars" env:"COMPARE_MAX_DIFF_CHARS" env-default:"10000"`

	// SemanticCleanup merges cosmetically fragmented edit-script segments.
	SemanticCleanup bool `yaml:"semantic_cleanup" env:"COMPARE_SEMANTIC_CLEANUP" env-default:"true"`

	// NormalizeDefault makes comparisons fold values unless the caller
	// says otherwise.
	NormalizeDefault bool `yaml:"normalize_default" env:"COMPARE_NORMALIZE_DEFAULT" env-default:"false"`
}

// Load reads configuration from config.yaml with environment variable
// overrides, or from the environment alone when no file is present.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(DefaultFile); err == nil {
		if err := cleanenv.ReadConfig(DefaultFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", DefaultFile, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment config: %w", err)
	}
	return cfg, nil
}

// DefaultOptions seeds comparison options from the configured defaults.
// Callers fill in key columns, match mode and field selection per comparison.
func (c *Config) DefaultOptions() compare.Options {
	return compare.Options{
		Normalize:       c.NormalizeDefault,
		MaxDiffChars:    c.MaxDiffChars,
		SemanticCleanup: c.SemanticCleanup,
	}
}
