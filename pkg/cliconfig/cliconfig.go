// Package cliconfig resolves the CLI's connection configuration from its
// sources: command-line flags beat environment variables beat the config
// file beat built-in defaults.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by the CLI.
const (
	EnvURL    = "ISSUEKIT_URL"
	EnvAPIKey = "ISSUEKIT_API_KEY"
)

// DefaultURL is used when no source configures a tracker URL.
const DefaultURL = "http://localhost:3000"

// FileConfig is the on-disk configuration shape.
type FileConfig struct {
	// URL is the tracker base URL.
	URL string `yaml:"url"`

	// APIKey is the tracker API key.
	APIKey string `yaml:"api_key"`

	// ServerVersion optionally pins the tracker's version, enabling
	// version-gated operations to fail fast.
	ServerVersion string `yaml:"server_version"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// ClientConfig is the fully resolved configuration for a connection.
type ClientConfig struct {
	URL           string
	APIKey        string
	ServerVersion string
	LogLevel      string
}

// Path returns the config file location:
// $XDG_CONFIG_HOME/issuekit/config.yaml (or ~/.config/issuekit/config.yaml).
func Path() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "issuekit", "config.yaml")
}

// Load reads the config file. A missing file is not an error and yields an
// empty configuration.
func Load() (*FileConfig, error) {
	return LoadPath(Path())
}

// LoadPath reads a config file from an explicit location.
func LoadPath(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve merges all sources into the effective configuration. flagURL and
// flagAPIKey come from the command line and win when non-empty.
func Resolve(flagURL, flagAPIKey string) ClientConfig {
	file, err := Load()
	if err != nil {
		// A broken config file must not take the CLI down; flags and
		// environment still work.
		file = &FileConfig{}
	}

	cfg := ClientConfig{
		URL:           first(flagURL, os.Getenv(EnvURL), file.URL, DefaultURL),
		APIKey:        first(flagAPIKey, os.Getenv(EnvAPIKey), file.APIKey),
		ServerVersion: file.ServerVersion,
		LogLevel:      file.LogLevel,
	}
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return cfg
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
