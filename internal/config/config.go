// Package config loads CLI defaults: the accent color used when no
// --color flag is given and the directory rendered frames are written
// to. Values come from an optional YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved settings.
type Config struct {
	Accent string
	OutDir string
}

// Defaults used when neither file nor environment provides a value.
const (
	DefaultAccent = "#c0922a"
	DefaultOutDir = "."
)

// Load reads the configuration. Lookup order: defaults, then
// $XDG_CONFIG_HOME/maptoken/config.yaml (or the OS equivalent), then
// MAPTOKEN_* environment variables. A missing config file is not an
// error; a malformed one is.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("accent", DefaultAccent)
	v.SetDefault("out_dir", DefaultOutDir)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "maptoken"))
	}

	v.SetEnvPrefix("MAPTOKEN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		Accent: v.GetString("accent"),
		OutDir: v.GetString("out_dir"),
	}, nil
}
