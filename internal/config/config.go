// Package config loads CLI settings from the configuration file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/hostcond-org/hostcond/internal/build"
)

// Config holds the runtime settings of the CLI.
type Config struct {
	Debug     bool   `mapstructure:"debug"`
	Quiet     bool   `mapstructure:"quiet"`
	LogFormat string `mapstructure:"logFormat"`
}

// Load reads the configuration file (if one exists) and the environment.
// Environment variables use the HOSTCOND_ prefix, e.g. HOSTCOND_DEBUG=1.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(build.Slug))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(fmt.Sprintf("$HOME/.config/%s", build.Slug))
	v.AddConfigPath(fmt.Sprintf("/etc/%s", build.Slug))

	v.SetDefault("debug", false)
	v.SetDefault("quiet", false)
	v.SetDefault("logFormat", "text")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
