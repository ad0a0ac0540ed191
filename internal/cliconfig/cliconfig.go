// Package cliconfig loads cmd/civiltime's process-wide defaults: the zone
// override and locale tag consulted when a subcommand's flags don't supply
// one. It never feeds civiltime's core package a global - every value it
// holds is read once per command invocation and passed down explicitly.
package cliconfig

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Zone   string `mapstructure:"zone"`
	Locale string `mapstructure:"locale"`
}

var defaults = Config{
	Zone:   "",
	Locale: "fr_FR",
}

// Load reads ~/.config/civiltime/config.yaml (falling back to the current
// directory), overlaid with defaults for any key the file doesn't set.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "civiltime"))
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("CIVILTIME")
	v.AutomaticEnv()

	v.SetDefault("zone", defaults.Zone)
	v.SetDefault("locale", defaults.Locale)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
