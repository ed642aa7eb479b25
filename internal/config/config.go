package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Calder-Energy/Siterank/mcda"
)

type Config struct {
	Output      OutputConfig      `yaml:"output"`
	Sensitivity SensitivityConfig `yaml:"sensitivity"`
	Criteria    []mcda.Criterion  `yaml:"criteria"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type OutputConfig struct {
	Format    string `yaml:"format"`
	Precision int    `yaml:"precision"`
}

type SensitivityConfig struct {
	Delta    float64 `yaml:"delta"`
	Parallel bool    `yaml:"parallel"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Registry returns the built-in criteria catalogue extended with the
// entries configured under the criteria key.
func (c *Config) Registry() (*mcda.Registry, error) {
	reg := mcda.DefaultRegistry()
	if len(c.Criteria) == 0 {
		return reg, nil
	}
	return reg.Extend(c.Criteria...)
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Output: OutputConfig{
			Format:    "table",
			Precision: 4,
		},
		Sensitivity: SensitivityConfig{
			Delta:    0.1,
			Parallel: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SITERANK_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("SITERANK_OUTPUT_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Output.Precision = n
		}
	}
	if v := os.Getenv("SITERANK_SENSITIVITY_DELTA"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Sensitivity.Delta = f
		}
	}
	if v := os.Getenv("SITERANK_SENSITIVITY_PARALLEL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sensitivity.Parallel = b
		}
	}
	if v := os.Getenv("SITERANK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SITERANK_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
