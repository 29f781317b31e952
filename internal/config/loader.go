package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load builds the configuration from:
// 1. Default values
// 2. the YAML file at path (optional; a missing file is not an error)
// 3. environment variables (see envBindings)
//
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("%w: failed to bind env for %s: %v", ErrConfiguration, key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: failed to read config file %s: %v", ErrConfiguration, path, err)
			}
			slog.Debug("Configuration file not found, using defaults and environment", "path", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return cfg, nil
}

// Validate checks the struct tags of the whole configuration tree.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
