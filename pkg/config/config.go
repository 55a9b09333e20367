// Package config loads the application configuration from a YAML file with
// environment variable expansion and explicit defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:nicefrog.db?cache=shared&mode=rwc,description=Local profile database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Engine EngineConfig `yaml:"engine" json:"engine" jsonschema:"description=Proximity engine configuration"`

	Relay RelayConfig `yaml:"relay" json:"relay" jsonschema:"description=Outbound SMS relay configuration"`

	Auth AuthConfig `yaml:"auth" json:"auth" jsonschema:"description=Session token configuration"`
}

// EngineConfig holds the proximity engine tunables
type EngineConfig struct {
	PollInterval time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=12s,description=Cadence of the simulated sensor polling loop"`
	ToastDwell   time.Duration `yaml:"toast_dwell" json:"toast_dwell" jsonschema:"default=8s,description=How long a toast stays up before auto-dismiss"`
}

// RelayConfig holds outbound webhook settings
type RelayConfig struct {
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Webhook request timeout"`
}

// AuthConfig holds session token settings
type AuthConfig struct {
	Secret   string        `yaml:"secret" json:"secret" jsonschema:"description=HMAC secret for session tokens (can use environment variable)"`
	TokenTTL time.Duration `yaml:"token_ttl" json:"token_ttl" jsonschema:"default=720h,description=Session token lifetime"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

// Default returns a configuration with every default applied, used when no
// config file is supplied
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:nicefrog.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Engine.PollInterval == 0 {
		c.Engine.PollInterval = 12 * time.Second
	}
	if c.Engine.ToastDwell == 0 {
		c.Engine.ToastDwell = 8 * time.Second
	}

	if c.Relay.Timeout == 0 {
		c.Relay.Timeout = 10 * time.Second
	}

	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 720 * time.Hour
	}
}

// GetServerConfig returns listen address and timeout for the HTTP server
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
