// Package config manages the platinfo configuration file at ~/.platinfo/config.yaml.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/illjut/platinfo/internal/artifact"
	"github.com/illjut/platinfo/internal/logging"
	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("config file not found")

const (
	DefaultNodeVersion = "20.11.1"
	DefaultLogLevel    = "warn"
)

type Config struct {
	Node      Node      `yaml:"node"`
	Overrides Overrides `yaml:"overrides"`
	LogLevel  string    `yaml:"log_level"`
}

type Node struct {
	Version string `yaml:"version"`
	BaseURL string `yaml:"base_url"`
}

// Overrides replace the detected host names. Empty values are ignored.
type Overrides struct {
	OSName string `yaml:"os_name,omitempty"`
	OSArch string `yaml:"os_arch,omitempty"`
}

// Dir returns the config directory path (~/.platinfo).
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".platinfo")
}

// Path returns the config file path (~/.platinfo/config.yaml).
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads and parses the config file. Returns ErrNotFound if it doesn't exist.
func Load() (*Config, error) {
	return loadFrom(Path())
}

// LoadOrDefault is Load with a missing file treated as Default().
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return cfg, err
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := marshalConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func marshalConfig(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		Node: Node{
			Version: DefaultNodeVersion,
			BaseURL: artifact.DefaultNodeBaseURL,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks the fields that cannot be caught at parse time.
func (c *Config) Validate() error {
	u, err := url.ParseRequestURI(c.Node.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid node.base_url %q: %w", c.Node.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid node.base_url %q: scheme must be http or https", c.Node.BaseURL)
	}
	if strings.TrimSpace(c.Node.Version) == "" {
		return fmt.Errorf("node.version cannot be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Keys lists the keys accepted by Set.
var Keys = []string{"node.version", "node.base_url", "overrides.os_name", "overrides.os_arch", "log_level"}

// Set updates a single dotted key. The result is not validated.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "node.version":
		c.Node.Version = value
	case "node.base_url":
		c.Node.BaseURL = value
	case "overrides.os_name":
		c.Overrides.OSName = value
	case "overrides.os_arch":
		c.Overrides.OSArch = value
	case "log_level":
		c.LogLevel = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
