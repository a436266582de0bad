package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const historyFileName = ".lox_history"

// config holds the driver settings read from the optional YAML file.
// Flags override whatever the file sets.
type config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	LogLevel    string `yaml:"log_level"`
	Color       *bool  `yaml:"color"`
}

func defaultConfig() config {
	color := true
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, historyFileName)
	}
	return config{
		Prompt:      "> ",
		HistoryFile: history,
		LogLevel:    "warning",
		Color:       &color,
	}
}

// loadConfig reads path on top of the defaults. An empty path or an empty
// file leaves the defaults untouched.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw config
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.merge(raw)
	return cfg, nil
}

func (c *config) merge(other config) {
	if other.Prompt != "" {
		c.Prompt = other.Prompt
	}
	if other.HistoryFile != "" {
		c.HistoryFile = expandHome(other.HistoryFile)
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Color != nil {
		c.Color = other.Color
	}
}

func (c *config) colorEnabled() bool {
	return c.Color == nil || *c.Color
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
