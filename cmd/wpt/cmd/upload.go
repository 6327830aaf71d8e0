package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func uploadCmd() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a price list for ingestion",
		Long: "Uploads a CSV, XLSX or text file of listing lines. The server runs\n" +
			"the extraction pipeline and stores the accepted listings.",
		Args: cobra.ExactArgs(1),
		Example: `  wpt upload prices_20240315.xlsx
  wpt upload prices.csv --as-of 2024-03-15`,
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close() //nolint:errcheck // read-only

			c := newClient()
			resp, err := c.Upload(context.Background(), args[0], f, asOf)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}
			return printUploadResult(resp)
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "as-of date YYYY-MM-DD (default today)")

	return cmd
}

func uploadsCmd() *cobra.Command {
	uploadsRoot := &cobra.Command{
		Use:   "uploads",
		Short: "Inspect the upload log",
	}

	uploadsRoot.AddCommand(
		uploadsListCmd(),
		uploadsGetCmd(),
	)

	return uploadsRoot
}

func uploadsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent uploads",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			uploads, err := c.ListUploads(context.Background(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(uploads)
			}
			if len(uploads) == 0 {
				fmt.Println("No uploads found.")
				return nil
			}
			return printUploadsTable(uploads)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum uploads to show (server default 20)")

	return cmd
}

func uploadsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			u, err := c.GetUpload(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(u)
			}
			return printUploadDetail(u)
		},
	}
}
