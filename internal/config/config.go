// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package config loads settings for the pngme command.
//
// Settings come from, in increasing order of precedence: built-in
// defaults, an optional config file (any format viper understands, TOML
// by convention), and PNGME_* environment variables.  Command-line
// flags are applied on top by the caller.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "PNGME"

type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`
	// Mmap memory-maps input files rather than reading them onto the heap.
	Mmap bool `mapstructure:"mmap"`
	// Passphrase, when set, seals messages on encode and opens them on decode.
	Passphrase string `mapstructure:"passphrase"`
	// EndType is the chunk type encode keeps at the end of the container.
	EndType string `mapstructure:"end_type"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Mmap:     true,
		EndType:  "IEND",
	}
}

// Load reads configuration.  path may be empty, in which case only
// defaults and the environment are consulted.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("mmap", defaults.Mmap)
	v.SetDefault("passphrase", defaults.Passphrase)
	v.SetDefault("end_type", defaults.EndType)

	v.SetEnvPrefix(EnvPrefix)
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
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if len(c.EndType) != 4 {
		return fmt.Errorf("end_type %q: must be a 4-letter chunk type", c.EndType)
	}
	return nil
}
