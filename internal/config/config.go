// Package config loads application configuration from file and
// environment.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config represents application configuration.
type Config struct {
	World WorldConfig `mapstructure:"world"`
	Log   LogConfig   `mapstructure:"log"`
}

// WorldConfig locates the world on disk.
type WorldConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls the application log.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing config file is not an
// error when no explicit path was given; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("holding")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.holding")
		v.AddConfigPath("/etc/holding")
	}

	v.SetDefault("world.path", ".")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("holding")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.World.Path == "" {
		return fmt.Errorf("world.path is required")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	return nil
}
