package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by the command. A .env file in the working
// directory is loaded into the environment first.
const (
	envCurrency = "SUMWORDS_CURRENCY"
	envWhole    = "SUMWORDS_WHOLE"
	envConfig   = "SUMWORDS_CONFIG"
)

const defaultCurrency = "RUB"

// Config holds the rendering defaults. Sources, lowest precedence first:
// built-in defaults, the YAML file, the environment, command-line flags.
type Config struct {
	Currency string `yaml:"currency"`
	Whole    bool   `yaml:"whole"`
}

func defaultConfig() Config {
	return Config{Currency: defaultCurrency}
}

// loadConfigFile reads a YAML config file over cfg. Keys missing from the
// file keep their current values.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg with the non-empty environment variables.
func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(envCurrency); v != "" {
		cfg.Currency = v
	}
	if v := getenv(envWhole); v != "" {
		whole, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envWhole, err)
		}
		cfg.Whole = whole
	}
	return nil
}
