package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/watch-price-tracker/internal/catalog"
	"github.com/donaldgifford/watch-price-tracker/internal/config"
	"github.com/donaldgifford/watch-price-tracker/internal/engine"
	"github.com/donaldgifford/watch-price-tracker/internal/sink"
	"github.com/donaldgifford/watch-price-tracker/internal/store"
	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// Sink kinds accepted by --out.
const (
	sinkCSV      = "csv"
	sinkSQLite   = "sqlite"
	sinkPostgres = "postgres"
)

var (
	processOut    string
	processOutput string
	processAsOf   string
)

var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Run the extraction pipeline over a local file",
	Long: "Reads a CSV, XLSX or text file of listing lines, runs the extraction\n" +
		"pipeline and writes the accepted listings to a CSV file, a SQLite\n" +
		"database or the PostgreSQL store.",
	Args: cobra.ExactArgs(1),
	Example: `  watch-price-tracker process prices_20240315.xlsx
  watch-price-tracker process prices.csv --out sqlite --output out/listings.db
  watch-price-tracker process prices.txt --out postgres --as-of 2024-03-15`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVar(&processOut, "out", sinkCSV, "destination: csv, sqlite or postgres")
	processCmd.Flags().StringVar(&processOutput, "output", "", "output path for csv and sqlite (default listings.csv or listings.db)")
	processCmd.Flags().StringVar(&processAsOf, "as-of", "", "as-of date YYYY-MM-DD (default today)")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	asOf, err := engine.ParseAsOfDate(processAsOf, time.Now())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pg *store.PostgresStore
	if processOut == sinkPostgres || cfg.Catalog.Source == "database" {
		if err := cfg.Database.Validate(); err != nil {
			return fmt.Errorf("database config: %w", err)
		}
		pg, err = openStore(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer pg.Close()
	}

	eng, err := newOfflineEngine(ctx, cfg, pg, logger)
	if err != nil {
		return err
	}

	var inserter sink.ListingInserter
	if pg != nil {
		inserter = pg
	}
	w, err := openSink(ctx, processOut, processOutput, inserter)
	if err != nil {
		return err
	}

	res, err := eng.ProcessFile(ctx, args[0], asOf, w)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing %s output: %w", processOut, cerr)
	}
	if err != nil {
		return err
	}

	return printProcessSummary(cmd.OutOrStdout(), res)
}

// newOfflineEngine builds an engine for a single run. pg may be nil when the
// catalog and the sink do not need the database.
func newOfflineEngine(
	ctx context.Context,
	cfg *config.Config,
	pg *store.PostgresStore,
	logger *slog.Logger,
) (*engine.Engine, error) {
	var (
		lister catalog.BrandCodeLister
		s      store.Store
	)
	if pg != nil {
		lister, s = pg, pg
	}

	cat, err := engine.LoadCatalog(ctx, &cfg.Catalog, lister, logger)
	if err != nil {
		return nil, err
	}
	pipe, err := engine.NewPipeline(&cfg.Pipeline, cat, logger)
	if err != nil {
		return nil, err
	}
	return engine.NewEngine(s, pipe,
		engine.WithLogger(logger),
		engine.WithMaxAmount(cfg.Pipeline.MaxAmount),
	), nil
}

// openSink returns the writer for kind. An empty path picks the default
// file name for the file sinks.
func openSink(ctx context.Context, kind, path string, inserter sink.ListingInserter) (sink.Writer, error) {
	switch kind {
	case sinkCSV:
		if path == "" {
			path = "listings.csv"
		}
		return sink.NewCSVWriter(path)
	case sinkSQLite:
		if path == "" {
			path = "listings.db"
		}
		return sink.NewSQLiteWriter(ctx, path)
	case sinkPostgres:
		if inserter == nil {
			return nil, fmt.Errorf("postgres output: %w", engine.ErrNoStore)
		}
		return sink.NewStoreWriter(inserter), nil
	default:
		return nil, fmt.Errorf("unknown output %q (want csv, sqlite or postgres)", kind)
	}
}

func printProcessSummary(out io.Writer, res *engine.IngestResult) error {
	tw := newTabWriter(out)
	tw.writef("Rows read:\t%d\n", res.RowsRead)
	tw.writef("Rows saved:\t%d\n", res.RowsSaved)
	tw.writef("Rows rejected:\t%d\n", res.RowsRejected)

	reasons := make([]string, 0, len(res.Rejected))
	for r := range res.Rejected {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		tw.writef("  %s:\t%d\n", r, res.Rejected[domain.RejectReason(r)])
	}

	for _, e := range res.Errors {
		tw.writef("Row %d:\t%s (%s)\n", e.Row, e.Error, e.Reference)
	}
	return tw.finish()
}
