package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/watch-price-tracker/internal/catalog"
)

func brandsCommand() *cobra.Command {
	brands := &cobra.Command{
		Use:   "brands",
		Short: "Manage the brand code catalog",
	}
	brands.AddCommand(brandsImportCommand())
	return brands
}

func brandsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Load brand codes from a CSV file into the database",
		Long: "Reads brand,ref_code rows (a header naming the columns is optional)\n" +
			"and upserts them. Running servers pick the codes up on restart.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Database.Validate(); err != nil {
				return fmt.Errorf("database config: %w", err)
			}
			logger := newLogger(cfg)

			codes, err := catalog.ReadFile(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			pg, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer pg.Close()

			n, err := pg.UpsertBrandCodes(ctx, codes)
			if err != nil {
				return fmt.Errorf("importing brand codes: %w", err)
			}

			logger.Info("brand codes imported", "file", args[0], "read", len(codes), "upserted", n)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(brandsCommand())
}
