// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/docconv/lib/docfile"
)

// EnvironmentVariable names the configuration file when --config is
// not given.
const EnvironmentVariable = "DOCCONV_CONFIG"

// TextExtension is the only text extension. It cannot be reconfigured.
const TextExtension = ".json"

// Config is the converter configuration.
type Config struct {
	// BinaryExtension is the extension given to binary output. It is
	// also accepted as binary input.
	// Default: .lens
	BinaryExtension string `yaml:"binary_extension"`

	// BinaryInputs are further extensions accepted as binary input.
	// Default: [.dat, .cbor]
	BinaryInputs []string `yaml:"binary_inputs"`

	// NarrowFloats rounds floating-point values of text input to 32-bit
	// precision during text-to-binary conversion.
	NarrowFloats bool `yaml:"narrow_floats"`

	// AllowComments accepts // and /* */ comments and trailing commas
	// in text input.
	AllowComments bool `yaml:"allow_comments"`

	// LogLevel is one of debug, info, warn, error.
	// Default: info
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given. It is
// also the base a loaded file is merged onto.
func Default() *Config {
	return &Config{
		BinaryExtension: ".lens",
		BinaryInputs:    []string{".dat", ".cbor"},
		LogLevel:        "info",
	}
}

// Load loads the file named by DOCCONV_CONFIG, or returns [Default]
// when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Keys absent
// from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile merges a single configuration file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.BinaryExtension = expandVars(c.BinaryExtension, vars)
	for i, extension := range c.BinaryInputs {
		c.BinaryInputs[i] = expandVars(extension, vars)
	}
	c.LogLevel = expandVars(c.LogLevel, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Provided vars first, then the environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for errors. Every problem is
// reported, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if err := validateExtension("binary_extension", c.BinaryExtension); err != nil {
		errs = append(errs, err)
	}
	for i, extension := range c.BinaryInputs {
		if err := validateExtension(fmt.Sprintf("binary_inputs[%d]", i), extension); err != nil {
			errs = append(errs, err)
		}
	}

	if !slices.Contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of: %v", logLevels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validateExtension(field, extension string) error {
	switch {
	case extension == "":
		return fmt.Errorf("%s is required", field)
	case !strings.HasPrefix(extension, ".") || len(extension) == 1:
		return fmt.Errorf("%s %q must be a dot followed by a name", field, extension)
	case strings.ContainsAny(extension[1:], `./\`):
		return fmt.Errorf("%s %q must be a single extension", field, extension)
	case strings.EqualFold(extension, TextExtension):
		return fmt.Errorf("%s cannot be %s", field, TextExtension)
	}
	return nil
}

// Extensions returns the extension table described by the
// configuration: .json for text, BinaryExtension first and then the
// BinaryInputs for binary. Duplicates are removed, compared
// case-insensitively.
func (c *Config) Extensions() docfile.Extensions {
	binary := []string{c.BinaryExtension}
	for _, extension := range c.BinaryInputs {
		duplicate := slices.ContainsFunc(binary, func(existing string) bool {
			return strings.EqualFold(existing, extension)
		})
		if !duplicate {
			binary = append(binary, extension)
		}
	}
	return docfile.Extensions{
		Text:   []string{TextExtension},
		Binary: binary,
	}
}

// Level returns LogLevel as a [slog.Level]. Unknown names map to info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
