/*
PURPOSE:
  Defines the configuration structure and loading logic for the converter.

REQUIREMENTS:
  User-specified:
  - Allow configuration of logging, result formatting and batch output.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support Environment variables overrides (ROMAN_...).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing default file is not an error (falls back to defaults).

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Precedence: defaults < file < environment < flags (flags applied in cli).

USAGE:
  cfg, err := config.Load("roman.yaml")

RELATED FILES:
  - internal/cli/root.go
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for the converter.
type Config struct {
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"` // text or json
	ResultPrefix string `yaml:"result_prefix"`
	InputFile    string `yaml:"input_file"`
	OutputDir    string `yaml:"output_dir"`
	OutputFile   string `yaml:"output_file"`
	JSONFile     string `yaml:"json_file"`
	StopOnError  bool   `yaml:"stop_on_error"`
}

// DefaultFiles are searched in order when no path is given.
var DefaultFiles = []string{"roman.yaml", "roman_converter.yaml"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "warn",
		LogFormat:    "text",
		ResultPrefix: "Result: ",
		InputFile:    "-",
		OutputDir:    ".",
		OutputFile:   "conversions.csv",
		JSONFile:     "conversions.jsonl",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
		}
	}

	if path != "" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ROMAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ROMAN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("ROMAN_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
}
