package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/watch-price-tracker/internal/loader"
)

func parseCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "parse [line...]",
		Short: "Parse listing lines without storing them",
		Long: "Sends listing lines to the server's extraction pipeline and prints\n" +
			"the extracted fields, or the reason a line was rejected.",
		Example: `  wpt parse "rolex 126610ln black hkd 98000 full set"
  wpt parse --file prices.txt --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			lines := args
			if file != "" {
				fileLines, err := loader.ReadFile(file)
				if err != nil {
					return err
				}
				lines = append(lines, fileLines...)
			}
			if len(lines) == 0 {
				return errors.New("no lines to parse: pass lines as arguments or use --file")
			}

			c := newClient()
			resp, err := c.Parse(context.Background(), lines)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Printf("%d accepted, %d rejected\n\n", resp.Accepted, resp.Rejected)
			return printParseTable(resp.Results)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read lines from a CSV, XLSX or text file")

	return cmd
}
