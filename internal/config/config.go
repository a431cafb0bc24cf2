// Package config loads runtime settings for the cadctl client from a
// config file, CADCTL_* environment variables, and flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the client's runtime settings.
type Config struct {
	// BaseURL is the root of the REST backend, e.g. "https://api.example.com/api".
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds every outgoing request.
	Timeout time.Duration `mapstructure:"timeout"`
	// DataDir holds the local sqlite database with tokens and preferences.
	DataDir string `mapstructure:"data_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// JSON switches command output to machine-readable JSON.
	JSON bool `mapstructure:"json"`
	// CacheTTL is the staleness window for public content.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// DatabasePath returns the sqlite DSN inside DataDir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "cadctl.db")
}

// Load builds the configuration. flags may be nil when no command-line
// overrides apply (tests).
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_url", "http://localhost:8000/api")
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("log_level", "warn")
	v.SetDefault("json", false)
	v.SetDefault("cache_ttl", 5*time.Minute)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "cadctl"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("CADCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if flags != nil {
		// Flags use dashes (--base-url), settings use underscores.
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("binding flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	return nil
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "cadctl")
	}
	return "."
}
