package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
	"gopkg.in/yaml.v3"
)

// Config represents chat server configuration
type Config struct {
	Address         string        `yaml:"address" env:"CHAT_ADDRESS"`
	HTTPAddress     string        `yaml:"http_address" env:"CHAT_HTTP_ADDRESS"`
	MaxMessageSize  int           `yaml:"max_message_size" env:"CHAT_MAX_MESSAGE_SIZE"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"CHAT_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"CHAT_SHUTDOWN_TIMEOUT"`
	HistoryGreets   int           `yaml:"history_greets" env:"CHAT_HISTORY_GREETS"`
	AcceptRate      float64       `yaml:"accept_rate" env:"CHAT_ACCEPT_RATE"`
	AcceptBurst     int           `yaml:"accept_burst" env:"CHAT_ACCEPT_BURST"`
	Logging         LoggingConfig `yaml:"logging"`
}

// LoggingConfig represents logging settings
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Address:         "127.0.0.1:7878",
		HTTPAddress:     "",
		MaxMessageSize:  1024,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		HistoryGreets:   0,
		AcceptRate:      50,
		AcceptBurst:     100,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration: defaults, then YAML file (if path is not empty),
// then .env file (if present), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	if err := env.Load(cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("address cannot be empty")
	}
	if c.MaxMessageSize <= 0 {
		return fmt.Errorf("max_message_size must be positive, got %d", c.MaxMessageSize)
	}
	if c.WriteTimeout < 0 {
		return fmt.Errorf("write_timeout cannot be negative, got %v", c.WriteTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %v", c.ShutdownTimeout)
	}
	if c.HistoryGreets < 0 {
		return fmt.Errorf("history_greets cannot be negative, got %d", c.HistoryGreets)
	}
	if c.AcceptRate <= 0 || c.AcceptBurst <= 0 {
		return fmt.Errorf("accept_rate and accept_burst must be positive, got %v and %d", c.AcceptRate, c.AcceptBurst)
	}
	if !isValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	return nil
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// String returns a string representation of the configuration (for logging)
func (c *Config) String() string {
	return fmt.Sprintf("Config{Address: %s, HTTP: %q, MaxMessageSize: %d, WriteTimeout: %v, HistoryGreets: %d, LogLevel: %s}",
		c.Address, c.HTTPAddress, c.MaxMessageSize, c.WriteTimeout, c.HistoryGreets, c.Logging.Level)
}
