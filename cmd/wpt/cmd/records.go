package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/watch-price-tracker/internal/api/client"
)

func recordsCmd() *cobra.Command {
	var params apiclient.ListRecordsParams

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Query stored listing records",
		Long: "List stored listing records with optional filters for brand,\n" +
			"currency, reference, year, tags, as-of date and final amount range.",
		Example: `  # Latest records
  wpt records

  # Rolex in HKD under 100k, cheapest first
  wpt records --brand rolex --currency HKD --max-amount 100000 --order-by final_amount

  # Everything from one upload
  wpt records --upload-id 6f1c... --limit 500`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListRecords(context.Background(), &params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Records) == 0 {
				fmt.Println("No records found.")
				return nil
			}

			fmt.Printf("Showing %d of %d records\n\n", len(resp.Records), resp.Total)
			return printRecordsTable(resp.Records)
		},
	}

	f := cmd.Flags()
	f.StringVar(&params.UploadID, "upload-id", "", "filter by upload ID")
	f.StringVar(&params.Brand, "brand", "", "filter by brand")
	f.StringVar(&params.Currency, "currency", "", "filter by currency (HKD, USD, USDT, KD)")
	f.StringVar(&params.Reference, "reference", "", "filter by reference substring")
	f.IntVar(&params.Year, "year", 0, "filter by year")
	f.StringVar(&params.Condition, "condition", "", "filter by condition tag")
	f.StringVar(&params.Color, "color", "", "filter by color tag")
	f.StringVar(&params.Completeness, "completeness", "", "filter by completeness")
	f.StringVar(&params.AsOfDate, "as-of", "", "filter by as-of date (YYYY-MM-DD)")
	f.Float64Var(&params.MinFinalAmount, "min-amount", 0, "minimum final amount")
	f.Float64Var(&params.MaxFinalAmount, "max-amount", 0, "maximum final amount")
	f.IntVar(&params.Limit, "limit", 50, "maximum records to return")
	f.IntVar(&params.Offset, "offset", 0, "offset for pagination")
	f.StringVar(&params.OrderBy, "order-by", "", "sort by: created_at, final_amount, year")

	return cmd
}
