package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	apiclient "github.com/donaldgifford/watch-price-tracker/internal/api/client"
	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// stdout is where tables and JSON are written.
var stdout io.Writer = os.Stdout

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printParseTable(results []apiclient.ParseResult) error {
	tw := newTabWriter(stdout)
	tw.writef("LINE\tRESULT\tREFERENCE\tBRAND\tPRICE\tYEAR\n")
	for i := range results {
		r := &results[i]
		if !r.Accepted || r.Record == nil {
			tw.writef("%s\trejected: %s\t-\t-\t-\t-\n", truncate(r.Line, 40), r.Reason)
			continue
		}
		tw.writef("%s\taccepted\t%s\t%s\t%s\t%s\n",
			truncate(r.Line, 40),
			r.Record.Reference,
			orDash(r.Record.Brand),
			formatPrice(r.Record.FinalAmount, string(r.Record.Currency)),
			formatYear(r.Record.Year),
		)
	}
	return tw.finish()
}

func printUploadResult(resp *apiclient.UploadResponse) error {
	tw := newTabWriter(stdout)
	tw.writef("Upload:\t%s\n", resp.UploadID)
	tw.writef("Status:\t%s\n", resp.Status)
	tw.writef("Rows read:\t%d\n", resp.RowsRead)
	tw.writef("Rows saved:\t%d\n", resp.RowsSaved)
	tw.writef("Rows rejected:\t%d\n", resp.RowsRejected)

	reasons := make([]string, 0, len(resp.Rejected))
	for r := range resp.Rejected {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		tw.writef("  %s:\t%d\n", r, resp.Rejected[domain.RejectReason(r)])
	}

	for _, e := range resp.Errors {
		tw.writef("Row %d:\t%s (%s, %s)\n", e.Row, e.Error, e.Reference, e.Price)
	}
	return tw.finish()
}

func printUploadsTable(uploads []domain.Upload) error {
	tw := newTabWriter(stdout)
	tw.writef("ID\tFILE\tAS OF\tSTATUS\tREAD\tSAVED\tREJECTED\tUPLOADED\n")
	for i := range uploads {
		u := &uploads[i]
		tw.writef("%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			u.ID,
			truncate(u.Filename, 30),
			u.AsOfDate.Format(time.DateOnly),
			u.Status,
			u.RowsRead,
			u.RowsSaved,
			u.RowsRejected,
			u.UploadedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printUploadDetail(u *domain.Upload) error {
	tw := newTabWriter(stdout)
	tw.writef("ID:\t%s\n", u.ID)
	tw.writef("File:\t%s\n", u.Filename)
	tw.writef("As of:\t%s\n", u.AsOfDate.Format(time.DateOnly))
	if u.SourceDate != nil {
		tw.writef("Source date:\t%s\n", u.SourceDate.Format(time.DateOnly))
	}
	tw.writef("Status:\t%s\n", u.Status)
	tw.writef("Rows:\t%d read, %d saved, %d rejected\n", u.RowsRead, u.RowsSaved, u.RowsRejected)
	tw.writef("Uploaded:\t%s\n", u.UploadedAt.Format(timeLayout))
	if u.CompletedAt != nil {
		tw.writef("Completed:\t%s\n", u.CompletedAt.Format(timeLayout))
	}
	if u.ErrorText != "" {
		tw.writef("Error:\t%s\n", u.ErrorText)
	}
	return tw.finish()
}

func printRecordsTable(records []domain.Listing) error {
	tw := newTabWriter(stdout)
	tw.writef("REFERENCE\tBRAND\tPRICE\tYEAR\tCONDITION\tCOLORS\tSET\tAS OF\n")
	for i := range records {
		r := &records[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(r.Reference, 30),
			orDash(r.Brand),
			formatPrice(r.FinalAmount, string(r.Currency)),
			formatYear(r.Year),
			orDash(strings.Join(r.Conditions, ",")),
			orDash(strings.Join(r.Colors, ",")),
			orDash(r.Completeness),
			r.AsOfDate.Format(time.DateOnly),
		)
	}
	return tw.finish()
}

func printBrandsTable(codes []domain.BrandCode) error {
	tw := newTabWriter(stdout)
	tw.writef("CODE\tBRAND\n")
	for _, c := range codes {
		tw.writef("%s\t%s\n", c.RefCode, c.Brand)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(timeLayout)
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = strconv.Itoa(*r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeLayout),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatPrice(v *float64, currency string) string {
	if v == nil {
		return "-"
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	if currency != "" {
		s = currency + " " + s
	}
	return s
}

func formatYear(y *int) string {
	if y == nil {
		return "-"
	}
	return strconv.Itoa(*y)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
