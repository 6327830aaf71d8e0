package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/watch-price-tracker/internal/catalog"
)

func brandsCmd() *cobra.Command {
	brandsRoot := &cobra.Command{
		Use:   "brands",
		Short: "Manage the brand code catalog",
		Long: "Brand codes map reference prefixes to brand names. Changes are\n" +
			"picked up by the server's pipeline on its next restart.",
	}

	brandsRoot.AddCommand(
		brandsListCmd(),
		brandsImportCmd(),
	)

	return brandsRoot
}

func brandsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List brand codes",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			codes, err := c.ListBrands(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(codes)
			}
			if len(codes) == 0 {
				fmt.Println("No brand codes found.")
				return nil
			}
			return printBrandsTable(codes)
		},
	}
}

func brandsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "import <file.csv>",
		Short:   "Upsert brand codes from a CSV file",
		Args:    cobra.ExactArgs(1),
		Example: `  wpt brands import brands.csv`,
		RunE: func(_ *cobra.Command, args []string) error {
			codes, err := catalog.ReadFile(args[0])
			if err != nil {
				return err
			}
			if len(codes) == 0 {
				return fmt.Errorf("no brand codes in %s", args[0])
			}

			c := newClient()
			n, err := c.UpsertBrands(context.Background(), codes)
			if err != nil {
				return err
			}

			fmt.Printf("Upserted %d brand codes.\n", n)
			return nil
		},
	}
}
