// Package config loads settings from config.yaml, the environment and
// command line flags, in that order of precedence (flags win).
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds the runtime settings shared by the CLI and the server.
type Config struct {
	OutputPath string // where processed reports are written; empty = next to input
	Format     string // json, csv or xlsx
	LogLevel   string
}

// Build assembles the configuration. cfgFile overrides the default
// config.yaml lookup; flags, when given, override everything.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Pull a local .env into the process before viper reads it.
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("output_path", "")
	v.SetDefault("format", "json")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("SMENA")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		bind(v, flags, "output_path", "output")
		bind(v, flags, "format", "format")
		bind(v, flags, "log_level", "log-level")
	}

	return &Config{
		OutputPath: v.GetString("output_path"),
		Format:     v.GetString("format"),
		LogLevel:   v.GetString("log_level"),
	}, nil
}

func bind(v *viper.Viper, flags *pflag.FlagSet, key, flag string) {
	if f := flags.Lookup(flag); f != nil {
		_ = v.BindPFlag(key, f)
	}
}
