package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Database.Validate(); err != nil {
		return fmt.Errorf("database config: %w", err)
	}

	logger := newLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	logger.Info("running migrations", "host", cfg.Database.Host)

	pg, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	logger.Info("migrations complete")
	return nil
}
