// Package config is for app wide settings that are unmarshalled
// from Viper (see: /internal/cli).
package config

import (
	"github.com/spf13/viper"
)

// Config is the root-level settings struct, a mix of settings available in
// an optional config file and those passed on the command line.
type Config struct {
	// path to the input FASTQ file ("-" for stdin, .gz accepted)
	Input string `mapstructure:"input"`

	// path the report command writes its JSON to
	Output string `mapstructure:"output"`

	// record sample cap for the per-position views
	SampleSize int `mapstructure:"sample-size"`

	// seed for the sampling randomness source; 0 means time-seeded
	Seed int64 `mapstructure:"seed"`

	// bin count of the length distribution histogram
	Bins int `mapstructure:"bins"`

	// log level: debug, info, warn or error
	LogLevel string `mapstructure:"log-level"`
}

// New returns a Config populated by Viper (config file and/or bound
// command line flags).
func New() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
