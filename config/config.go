// Package config loads quanta configuration with Viper.
//
// Configuration is read from quanta.toml (working directory or
// $HOME/.config/quanta), overridable through QUANTA_* environment
// variables. Everything has a usable default; the engine never requires a
// config file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/quanta/errors"
)

// Config is the full quanta configuration.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Parse  ParseConfig  `mapstructure:"parse"`
}

// EngineConfig bounds the pass driver.
type EngineConfig struct {
	// Workers is the number of goroutines matching concurrently within
	// one pass.
	Workers int `mapstructure:"workers"`
	// MaxPasses caps passes per parse; 0 means the rule-count bound.
	MaxPasses int `mapstructure:"max_passes"`
	// MaxMatches caps matcher invocations per parse; 0 means unlimited.
	MaxMatches int64 `mapstructure:"max_matches"`
	// IncludeLatent admits low-confidence tokens into resolution.
	IncludeLatent bool `mapstructure:"include_latent"`
}

// ParseConfig holds request defaults.
type ParseConfig struct {
	DefaultLocale   string `mapstructure:"default_locale"`
	DefaultTimezone string `mapstructure:"default_timezone"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("engine.workers", 4)
	v.SetDefault("engine.max_passes", 0)
	v.SetDefault("engine.max_matches", 500000)
	v.SetDefault("engine.include_latent", false)

	v.SetDefault("parse.default_locale", "en")
	v.SetDefault("parse.default_timezone", "UTC")
}

// Load reads configuration from the default locations.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("quanta")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "quanta"))
	}
	v.SetEnvPrefix("QUANTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine: defaults plus environment apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}
	return LoadWithViper(v)
}

// LoadWithViper loads configuration from a prepared Viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	return LoadWithViper(v)
}
