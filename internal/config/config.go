// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"

	"github.com/deacix/dune-mcp/internal/dune"
)

// EnvPrefix is the prefix for nested environment overrides, e.g.
// DUNE_MCP__SERVER__PORT. Common settings also have short aliases such as
// DUNE_API_KEY, PORT and LOG_LEVEL.
const EnvPrefix = "DUNE_MCP"

// Config holds all configuration for the dune-mcp server.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Dune    DuneConfig    `koanf:"dune"`
	MCP     MCPConfig     `koanf:"mcp"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port" validate:"gte=1,lte=65535"`
	ReadTimeout time.Duration `koanf:"read_timeout" validate:"gte=0"`
	// WriteTimeout is disabled by default because streamable HTTP sessions
	// hold the response open well beyond any fixed deadline.
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// DuneConfig holds upstream API client configuration.
type DuneConfig struct {
	// APIKey may be left empty here; the client falls back to the
	// DUNE_API_KEY environment variable.
	APIKey        string        `koanf:"api_key"`
	BaseURL       string        `koanf:"base_url" validate:"required,url"`
	Timeout       time.Duration `koanf:"timeout" validate:"gt=0"`
	UploadTimeout time.Duration `koanf:"upload_timeout" validate:"gt=0"`
}

// MCPConfig holds tool surface configuration.
type MCPConfig struct {
	// Toolsets is a comma-separated list of toolset names, or "all".
	Toolsets string `koanf:"toolsets" validate:"required"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level     string `koanf:"level" validate:"oneof=debug info warn warning error"`
	Format    string `koanf:"format" validate:"oneof=json text"`
	AddSource bool   `koanf:"add_source"`
}

// Defaults returns the default configuration values.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    0,
			ShutdownTimeout: 10 * time.Second,
		},
		Dune: DuneConfig{
			BaseURL:       dune.DefaultBaseURL,
			Timeout:       dune.DefaultTimeout,
			UploadTimeout: dune.DefaultUploadTimeout,
		},
		MCP: MCPConfig{
			Toolsets: "all",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// envAliases maps well-known un-prefixed environment variables onto config
// keys. DUNE_API_KEY is the variable the upstream ecosystem documents.
var envAliases = map[string]string{
	"DUNE_API_KEY":            "dune.api_key",
	"DUNE_BASE_URL":           "dune.base_url",
	"DUNE_TIMEOUT":            "dune.timeout",
	"DUNE_UPLOAD_TIMEOUT":     "dune.upload_timeout",
	"SERVER_HOST":             "server.host",
	"SERVER_PORT":             "server.port",
	"SERVER_READ_TIMEOUT":     "server.read_timeout",
	"SERVER_WRITE_TIMEOUT":    "server.write_timeout",
	"SERVER_SHUTDOWN_TIMEOUT": "server.shutdown_timeout",
	"PORT":                    "server.port", // Common alias
	"MCP_TOOLSETS":            "mcp.toolsets",
	"LOG_LEVEL":               "logging.level",
	"LOG_FORMAT":              "logging.format",
}

// FlagMappings maps CLI flag names onto config keys for LoadFlags.
func FlagMappings() map[string]string {
	return map[string]string{
		"host":       "server.host",
		"port":       "server.port",
		"api-key":    "dune.api_key",
		"base-url":   "dune.base_url",
		"toolsets":   "mcp.toolsets",
		"log-level":  "logging.level",
		"log-format": "logging.format",
	}
}

// Load builds the effective configuration. Priority, highest first: flags,
// environment aliases, DUNE_MCP__ environment overrides, config file,
// defaults. flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	loader, err := newLoader(configPath, flags)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := loader.UnmarshalAndValidate("", &cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Dump writes the effective configuration as YAML. The API key is redacted;
// it never leaves the process.
func Dump(w io.Writer, configPath string, flags *pflag.FlagSet) error {
	loader, err := newLoader(configPath, flags)
	if err != nil {
		return err
	}

	var cfg Config
	if err := loader.UnmarshalAndValidate("", &cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Dune.APIKey != "" {
		if err := loader.Set("dune.api_key", "[redacted]"); err != nil {
			return err
		}
	}
	return loader.DumpYAML(w)
}

func newLoader(configPath string, flags *pflag.FlagSet) (*Loader, error) {
	loader := NewLoader(EnvPrefix)
	if err := loader.LoadWithDefaults(Defaults(), configPath); err != nil {
		return nil, err
	}
	if err := loader.LoadEnvAliases(envAliases); err != nil {
		return nil, err
	}
	if flags != nil {
		if err := loader.LoadFlags(flags, FlagMappings()); err != nil {
			return nil, err
		}
	}
	return loader, nil
}

// Validate implements the Validator interface.
func (c *Config) Validate() error {
	return validateStruct(c)
}
