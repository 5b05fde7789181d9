package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNewFromViper(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("input", "reads.fastq.gz")
	viper.Set("sample-size", 100)
	viper.Set("seed", int64(42))
	viper.Set("bins", 10)
	viper.Set("log-level", "debug")

	c, err := New()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if c.Input != "reads.fastq.gz" || c.SampleSize != 100 || c.Seed != 42 || c.Bins != 10 {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.LogLevel != "debug" {
		t.Fatalf("unexpected log level %q", c.LogLevel)
	}
}
