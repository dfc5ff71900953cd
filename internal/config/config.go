package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the hbs-render command
type Config struct {
	// Input and output
	TemplatePath string `env:"TEMPLATE_PATH,required"`
	DataPath     string `env:"DATA_PATH" envDefault:""`
	OutputPath   string `env:"OUTPUT_PATH" envDefault:""`

	// Caller-supplied functions as CEL expressions, e.g. "double=>item + item;upper=>item.upperAscii()"
	Mappers     map[string]string `env:"MAPPERS" envSeparator:";" envKeyValSeparator:"=>"`
	Comparators map[string]string `env:"COMPARATORS" envSeparator:";" envKeyValSeparator:"=>"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.TemplatePath == "" {
		return fmt.Errorf("TEMPLATE_PATH is required")
	}

	if err := validateFunctions("MAPPERS", c.Mappers); err != nil {
		return err
	}

	if err := validateFunctions("COMPARATORS", c.Comparators); err != nil {
		return err
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	return nil
}

// validateFunctions rejects blank names and expressions
func validateFunctions(key string, functions map[string]string) error {
	for name, expression := range functions {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s contains an entry without a name", key)
		}
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("%s entry %q has an empty expression", key, name)
		}
	}
	return nil
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// String returns a string representation of the config
func (c *Config) String() string {
	output := c.OutputPath
	if output == "" {
		output = "stdout"
	}

	return fmt.Sprintf(
		"Config{TemplatePath=%s, DataPath=%s, OutputPath=%s, Mappers=%v, Comparators=%v, LogLevel=%s}",
		c.TemplatePath,
		c.DataPath,
		output,
		names(c.Mappers),
		names(c.Comparators),
		c.LogLevel,
	)
}

func names(functions map[string]string) []string {
	out := make([]string, 0, len(functions))
	for name := range functions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
