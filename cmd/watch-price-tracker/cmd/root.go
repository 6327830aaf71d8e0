// Package cmd implements the CLI commands for watch-price-tracker.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/watch-price-tracker/internal/config"
	"github.com/donaldgifford/watch-price-tracker/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "watch-price-tracker",
	Short: "Extract structured watch listings from dealer price lists",
	Long: "An API-first service that turns free-text watch dealer listings into\n" +
		"structured records (reference, brand, price, condition, year, colors)\n" +
		"and stores them for querying.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file. The default path may be absent, in which
// case built-in defaults are used; an explicit --config must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		if err := config.LoadEnvFile(".env"); err != nil {
			return nil, err
		}
		return config.Default(), nil
	}
	return nil, fmt.Errorf("loading config: %w", err)
}

// newLogger builds the process logger and installs it as the slog default.
func newLogger(cfg *config.Config) *slog.Logger {
	l := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(l)
	return l
}
