// Package config loads podfetch settings from the environment and an
// optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "TASKQ"

// The original client the pipeline replaces sent a browser agent
// because some podcast hosts reject unknown ones.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 6.1; Win64; x64)"

// Config holds all podfetch configuration.
type Config struct {
	// Feeds are the RSS/Atom URLs whose enclosures get downloaded.
	// From the environment: TASKQ_FEEDS as a comma-separated list.
	Feeds []string `mapstructure:"feeds" validate:"required,min=1,dive,url"`

	// Workers is the number of concurrent download workers.
	Workers int `mapstructure:"workers" validate:"gt=0"`

	// OutputDir is where downloaded enclosures are written.
	OutputDir string `mapstructure:"output_dir" validate:"required"`

	// UserAgent is sent with feed and enclosure requests.
	UserAgent string `mapstructure:"user_agent" validate:"required"`

	// HTTPTimeout bounds a single enclosure download.
	HTTPTimeout time.Duration `mapstructure:"http_timeout" validate:"gt=0"`

	// EntryLimit caps how many entries per feed are considered.
	EntryLimit int `mapstructure:"entry_limit" validate:"gt=0"`
}

// Load reads configuration from environment variables (TASKQ_ prefix)
// and, when path is non-empty, from a config file. Environment
// variables take precedence over file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("feeds", []string{})
	v.SetDefault("workers", 2)
	v.SetDefault("output_dir", ".")
	v.SetDefault("user_agent", defaultUserAgent)
	v.SetDefault("http_timeout", "30s")
	v.SetDefault("entry_limit", 5)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
