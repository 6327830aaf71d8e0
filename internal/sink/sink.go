// Package sink writes processed listings to their destination: a CSV file,
// a SQLite database or the PostgreSQL store.
package sink

import (
	"context"
	"strconv"
	"strings"
	"time"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// Writer persists listings. Write returns the number of rows written.
type Writer interface {
	Write(ctx context.Context, listings []domain.Listing) (int, error)
	Close() error
}

// Columns is the column order shared by the file sinks.
var Columns = []string{
	"upload_id", "reference", "brand", "currency",
	"amount", "discount_pct", "final_amount",
	"conditions", "year", "completeness", "colors", "bracelet",
	"source_text", "source_date", "as_of_date",
}

// listSeparator joins multi-valued tags in flat outputs.
const listSeparator = "|"

const dateLayout = time.DateOnly

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// flatten renders a listing as strings in Columns order.
func flatten(l *domain.Listing) []string {
	return []string{
		l.UploadID,
		l.Reference,
		l.Brand,
		string(l.Currency),
		formatFloat(l.Amount),
		formatFloat(l.DiscountPct),
		formatFloat(l.FinalAmount),
		strings.Join(l.Conditions, listSeparator),
		formatInt(l.Year),
		l.Completeness,
		strings.Join(l.Colors, listSeparator),
		l.Bracelet,
		l.Text,
		formatDate(l.SourceDate),
		formatDate(&l.AsOfDate),
	}
}
