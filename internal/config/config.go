package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables, e.g. ALVREPORT_LOG_LEVEL.
const EnvPrefix = "ALVREPORT"

// Config holds all configuration for alvreport.
type Config struct {
	// Database configuration
	Database DatabaseConfig `mapstructure:"database"`

	// Logging verbosity: debug, info, warn or error
	LogLevel string `mapstructure:"log_level"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// Name, User and Password come from the command line, never from the
	// environment.
	Name     string `mapstructure:"-"`
	User     string `mapstructure:"-"`
	Password string `mapstructure:"-"`

	// Host and Port are fixed constants, see defaults.go.
	Host string `mapstructure:"-"`
	Port int    `mapstructure:"-"`

	// Connection pool settings
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// DSN returns the PostgreSQL connection URL for this configuration.
// Credentials are URL-escaped so passwords may contain reserved characters.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}
	return u.String()
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:           DBHost,
			Port:           DBPort,
			MaxConns:       DBMaxConns,
			MinConns:       DBMinConns,
			ConnectTimeout: DBConnectTimeout,
		},
		LogLevel: "info",
	}
}

// Load reads configuration from the environment into a Config struct.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Register keys so AutomaticEnv picks them up during Unmarshal
	viper.SetDefault("log_level", cfg.LogLevel)
	viper.SetDefault("database.max_conns", cfg.Database.MaxConns)
	viper.SetDefault("database.min_conns", cfg.Database.MinConns)
	viper.SetDefault("database.connect_timeout", cfg.Database.ConnectTimeout)

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Database.MaxConns < 1 {
		errs = append(errs, "database.max_conns must be >= 1")
	}
	if c.Database.MinConns < 0 {
		errs = append(errs, "database.min_conns must be >= 0")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, "database.min_conns should not exceed max_conns")
	}
	if c.Database.ConnectTimeout <= 0 {
		errs = append(errs, "database.connect_timeout must be positive")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log_level %q must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
