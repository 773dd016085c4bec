package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"gopkg.in/yaml.v3"
)

// Config holds the interpreter settings that may come from a YAML file.
// Command-line flags override whatever the file sets.
type Config struct {
	LogLevel     string `yaml:"log_level"`
	Trace        bool   `yaml:"trace"`
	TraceFilter  string `yaml:"trace_filter"` // comma-separated globs over DISPLAY, DECLARE, EXPR
	PersistStore bool   `yaml:"persist_store"`
	ShowStore    bool   `yaml:"show_store"`
}

// Default returns the settings used when no file is given
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads a YAML config file on top of the defaults.
// Unknown keys are rejected so typos do not go unnoticed.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data on top of the defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level validates and returns the configured log level
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ValidateLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
