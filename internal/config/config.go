// Package config provides configuration management for the issuepost CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the CLI. The core client takes explicit
// arguments and never reads the environment itself.
type Config struct {
	Token   string
	Owner   string
	Repo    string
	Proxy   map[string]string
	Timeout time.Duration

	TelemetryEnabled  bool
	TelemetryEndpoint string
}

// Load loads configuration from environment variables
func Load() Config {
	config := Config{
		Token:             os.Getenv("GITHUB_TOKEN"),
		Owner:             os.Getenv("GITHUB_OWNER"),
		Repo:              os.Getenv("GITHUB_REPO"),
		Timeout:           10 * time.Second, // Default
		TelemetryEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	// Parse timeout if provided
	if timeout := os.Getenv("ISSUEPOST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Timeout = d
		}
	}

	if v := os.Getenv("ISSUEPOST_TELEMETRY"); v == "1" || v == "true" {
		config.TelemetryEnabled = true
	}

	return config
}

// fileConfig is the YAML shape of a config file. Proxy is kept as a raw node
// so a scalar value can be rejected with a useful error.
type fileConfig struct {
	Token   string    `yaml:"token"`
	Owner   string    `yaml:"owner"`
	Repo    string    `yaml:"repo"`
	Timeout string    `yaml:"timeout"`
	Proxy   yaml.Node `yaml:"proxy"`
}

// MergeFile fills unset fields from a YAML config file. Values already present
// (from the environment) win over file values.
func (c *Config) MergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if c.Token == "" {
		c.Token = fc.Token
	}
	if c.Owner == "" {
		c.Owner = fc.Owner
	}
	if c.Repo == "" {
		c.Repo = fc.Repo
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config file: %w", fc.Timeout, err)
		}
		c.Timeout = d
	}
	if fc.Proxy.Kind != 0 {
		if fc.Proxy.Kind != yaml.MappingNode {
			return errors.New("proxy must be a mapping of scheme to proxy URL")
		}
		proxy := map[string]string{}
		if err := fc.Proxy.Decode(&proxy); err != nil {
			return fmt.Errorf("invalid proxy mapping: %w", err)
		}
		c.Proxy = proxy
	}

	return nil
}

// Validate checks if the required configuration is present
func (c Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("missing required environment variable: GITHUB_TOKEN")
	}
	return nil
}
