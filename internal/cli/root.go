// Package cli wires the command line interface around the fastq parsing
// and statistics packages.
package cli

import (
	"math/rand"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/solnyshko2009/qui-task/internal/config"
	"github.com/solnyshko2009/qui-task/internal/fastq"
	"github.com/solnyshko2009/qui-task/internal/stats"
)

// version can be overridden at build time with -ldflags "-X ...cli.version=..."
var version = "0.1.0"

var (
	logger *log.Logger
	cfg    config.Config

	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "fastq-stat",
	Short:   "Compute FastQC-style statistics over FASTQ files",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return err
			}
		}
		var err error
		cfg, err = config.New()
		if err != nil {
			return err
		}
		logger = newLogger(cfg.LogLevel)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "path to an optional config file")
	pf.StringP("input", "i", "-", "input FASTQ file (.gz accepted, - for stdin)")
	pf.Int("sample-size", stats.DefaultSampleSize, "record sample cap for per-position views")
	pf.Int64("seed", 0, "sampling seed (0 = time-seeded)")
	pf.Int("bins", stats.DefaultBins, "length distribution bin count")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	_ = viper.BindPFlags(pf)
}

// bindCommandFlags exposes a subcommand's own flags through Viper so they
// land in config.New alongside the persistent ones.
func bindCommandFlags(cmd *cobra.Command) {
	_ = viper.BindPFlags(cmd.Flags())
}

// newLogger builds the stderr logger at the configured level.
func newLogger(level string) *log.Logger {
	l := log.New(os.Stderr)
	switch strings.ToLower(level) {
	case "debug":
		l.SetLevel(log.DebugLevel)
	case "info", "":
		l.SetLevel(log.InfoLevel)
	case "warn", "warning":
		l.SetLevel(log.WarnLevel)
	case "error":
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.InfoLevel)
		l.Warn("unknown log-level, defaulting to info", "provided", level)
	}
	return l
}

// loadStore parses the configured input into a fresh Store.
func loadStore() (*fastq.Store, error) {
	logger.Debug("parsing input", "path", cfg.Input)
	store, err := fastq.NewReader().ParseFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	logger.Info("parsed fastq", "path", cfg.Input,
		"records", store.Count(),
		"total_length", store.TotalLength(),
		"average_length", store.AverageSequenceLength())
	return store, nil
}

// newEngine builds a statistics engine honoring the sampling settings.
func newEngine(store *fastq.Store) *stats.Engine {
	ec := stats.Config{SampleSize: cfg.SampleSize}
	if cfg.Seed != 0 {
		ec.Rand = rand.New(rand.NewSource(cfg.Seed))
	}
	return stats.New(store, ec)
}
