// Package config loads textvault configuration with viper.
//
// Precedence, lowest to highest: defaults, config file, environment.
// Environment variables use the TEXTVAULT_ prefix with dots replaced by
// underscores (TEXTVAULT_SERVER_PORT). The bare PORT variable is honoured for
// server.port when TEXTVAULT_SERVER_PORT is unset.
package config

import (
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/roach88/textvault/internal/errors"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "TEXTVAULT"

// Config is the complete process configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// RateLimit is the sustained requests per second per process.
	// Zero disables rate limiting.
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

// Address returns host:port for listening.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LogConfig configures internal/logger.
type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "textvault.db")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.rate_limit", 0.0)
	v.SetDefault("server.rate_burst", 20)

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// PORT is the conventional variable on container platforms.
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")

	SetDefaults(v)
	return v
}

// Load reads configuration from defaults, the optional file and the
// environment, then validates it.
func Load(configFile string) (*Config, error) {
	v := New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates configuration from v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field and reports all problems together.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Database.Path) == "" {
		problems = append(problems, "database.path must not be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, "server.port must be between 1 and 65535, got "+strconv.Itoa(c.Server.Port))
	}
	if c.Server.RateLimit < 0 {
		problems = append(problems, "server.rate_limit must be >= 0")
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		problems = append(problems, "server.rate_burst must be >= 1 when rate limiting is enabled")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.WithHint(
		errors.Newf("invalid configuration: %s", strings.Join(problems, "; ")),
		"check the config file and "+EnvPrefix+"_* environment variables",
	)
}
