// Package engine implements the ingestion flow: uploaded or local files are
// read, run through the extraction pipeline and persisted, and a scheduler
// expires old listings.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/watch-price-tracker/internal/loader"
	"github.com/donaldgifford/watch-price-tracker/internal/metrics"
	"github.com/donaldgifford/watch-price-tracker/internal/sink"
	"github.com/donaldgifford/watch-price-tracker/internal/store"
	"github.com/donaldgifford/watch-price-tracker/pkg/extract"
	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// DefaultMaxAmount is the largest final amount persisted as-is.
const DefaultMaxAmount = 1e9

var tracer trace.Tracer = otel.Tracer("github.com/donaldgifford/watch-price-tracker/internal/engine")

var (
	// ErrNoStore is returned by Ingest on an engine built without a store.
	ErrNoStore = errors.New("engine has no store")

	// ErrInvalidAsOfDate is returned for as-of dates that are malformed or
	// in the future.
	ErrInvalidAsOfDate = errors.New("invalid as-of date")
)

// Engine orchestrates loading, extraction and persistence of uploaded files.
type Engine struct {
	store     store.Store
	pipeline  *extract.Pipeline
	log       *slog.Logger
	maxAmount float64
	now       func() time.Time
}

// NewEngine creates a new Engine with injected dependencies. s may be nil
// for engines that only write to file sinks.
func NewEngine(s store.Store, p *extract.Pipeline, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:     s,
		pipeline:  p,
		log:       slog.Default(),
		maxAmount: DefaultMaxAmount,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithMaxAmount sets the amount ceiling. Zero keeps the default.
func WithMaxAmount(v float64) EngineOption {
	return func(e *Engine) {
		if v > 0 {
			e.maxAmount = v
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// Pipeline returns the extraction pipeline.
func (eng *Engine) Pipeline() *extract.Pipeline {
	return eng.pipeline
}

// IngestRequest describes one file to ingest.
type IngestRequest struct {
	Filename string
	Body     io.Reader
	AsOfDate time.Time
}

// RowError reports a record that was saved without its amounts.
type RowError struct {
	Row       int    `json:"row" doc:"Index of the record within the accepted batch"`
	Reference string `json:"reference"`
	Price     string `json:"price"`
	Error     string `json:"error"`
}

// IngestResult summarizes an ingestion.
type IngestResult struct {
	UploadID     string
	RowsRead     int
	RowsSaved    int
	RowsRejected int
	Rejected     map[domain.RejectReason]int
	Errors       []RowError
}

// Ingest loads a file, runs the pipeline over it and stores the listings.
// Every attempt is recorded in the upload log, including failures.
func (eng *Engine) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	if eng.store == nil {
		return nil, ErrNoStore
	}

	ctx, span := tracer.Start(ctx, "engine.Ingest",
		trace.WithAttributes(attribute.String("filename", req.Filename)))
	defer span.End()

	start := eng.now()
	defer func() {
		metrics.UploadDuration.Observe(eng.now().Sub(start).Seconds())
	}()

	upload := &domain.Upload{
		Filename: req.Filename,
		AsOfDate: req.AsOfDate,
		Status:   domain.UploadProcessing,
	}
	if d, ok := loader.FileDate(req.Filename); ok {
		upload.SourceDate = &d
	}

	if err := eng.store.CreateUpload(ctx, upload); err != nil {
		metrics.UploadsTotal.WithLabelValues(string(domain.UploadFailed)).Inc()
		return nil, fmt.Errorf("recording upload: %w", err)
	}
	span.SetAttributes(attribute.String("upload_id", upload.ID))

	log := eng.log.With("upload_id", upload.ID, "filename", req.Filename)
	log.Info("processing upload")

	res, err := eng.ingest(ctx, upload, req.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("upload failed", "error", err)
		upload.Status = domain.UploadFailed
		upload.ErrorText = err.Error()
	} else {
		upload.Status = domain.UploadCompleted
	}

	// The upload row is finished even when the request context is gone.
	finishCtx := context.WithoutCancel(ctx)
	if ferr := eng.store.FinishUpload(finishCtx, upload); ferr != nil {
		log.Error("finishing upload failed", "error", ferr)
		if err == nil {
			err = fmt.Errorf("finishing upload: %w", ferr)
		}
	}
	metrics.UploadsTotal.WithLabelValues(string(upload.Status)).Inc()

	if err != nil {
		return nil, err
	}

	log.Info("upload completed",
		"rows_read", res.RowsRead,
		"rows_saved", res.RowsSaved,
		"rows_rejected", res.RowsRejected,
	)
	return res, nil
}

func (eng *Engine) ingest(
	ctx context.Context,
	upload *domain.Upload,
	body io.Reader,
) (*IngestResult, error) {
	format, err := loader.FormatFor(upload.Filename)
	if err != nil {
		return nil, err
	}

	lines, err := loader.Read(body, format)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	res, err := eng.process(ctx, lines, upload, sink.NewStoreWriter(eng.store))
	upload.RowsRead = len(lines)
	if res != nil {
		upload.RowsSaved = res.RowsSaved
		upload.RowsRejected = res.RowsRejected
	}
	return res, err
}

// ProcessFile runs the pipeline over a local file and writes the listings to
// w. Nothing is recorded in the upload log; the listings carry a fresh
// upload ID so one run can be told apart from another.
func (eng *Engine) ProcessFile(
	ctx context.Context,
	path string,
	asOf time.Time,
	w sink.Writer,
) (*IngestResult, error) {
	ctx, span := tracer.Start(ctx, "engine.ProcessFile",
		trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	lines, err := loader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	upload := &domain.Upload{
		ID:       uuid.NewString(),
		Filename: path,
		AsOfDate: asOf,
	}
	if d, ok := loader.FileDate(path); ok {
		upload.SourceDate = &d
	}

	return eng.process(ctx, lines, upload, w)
}

func (eng *Engine) process(
	ctx context.Context,
	lines []string,
	upload *domain.Upload,
	w sink.Writer,
) (*IngestResult, error) {
	start := time.Now()
	batch, err := eng.pipeline.Run(ctx, lines)
	if err != nil {
		return nil, err
	}
	metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	recordBatchMetrics(batch)

	listings, rowErrs := eng.BuildListings(batch.Records, upload)

	saved, err := w.Write(ctx, listings)
	if err != nil {
		return nil, fmt.Errorf("writing listings: %w", err)
	}
	metrics.ListingsSavedTotal.Add(float64(saved))

	return &IngestResult{
		UploadID:     upload.ID,
		RowsRead:     batch.Read,
		RowsSaved:    saved,
		RowsRejected: batch.RejectedTotal(),
		Rejected:     batch.Rejected,
		Errors:       rowErrs,
	}, nil
}

// BuildListings attaches upload provenance to records. Records whose final
// amount exceeds the ceiling keep their other fields but lose their amounts,
// and are reported as row errors.
func (eng *Engine) BuildListings(records []domain.FieldRecord, upload *domain.Upload) ([]domain.Listing, []RowError) {
	listings := make([]domain.Listing, len(records))
	var rowErrs []RowError

	for i, rec := range records {
		if rec.FinalAmount != nil && *rec.FinalAmount > eng.maxAmount {
			rowErrs = append(rowErrs, RowError{
				Row:       i,
				Reference: rec.Reference,
				Price:     strconv.FormatFloat(*rec.FinalAmount, 'f', -1, 64),
				Error:     fmt.Sprintf("amount exceeds %.0f", eng.maxAmount),
			})
			rec.Amount, rec.DiscountPct, rec.FinalAmount = nil, nil, nil
			metrics.AmountsCappedTotal.Inc()
		}

		listings[i] = domain.Listing{
			UploadID:    upload.ID,
			FieldRecord: rec,
			SourceDate:  upload.SourceDate,
			AsOfDate:    upload.AsOfDate,
		}
	}

	return listings, rowErrs
}

func recordBatchMetrics(b *extract.Batch) {
	metrics.RowsProcessedTotal.Add(float64(b.Read))
	metrics.RowsAcceptedTotal.Add(float64(len(b.Records)))
	for reason, n := range b.Rejected {
		metrics.RowsRejectedTotal.WithLabelValues(string(reason)).Add(float64(n))
	}
}

// Cleanup deletes listings created more than retention ago and returns how
// many were removed.
func (eng *Engine) Cleanup(ctx context.Context, retention time.Duration) (int, error) {
	if eng.store == nil {
		return 0, ErrNoStore
	}

	deleted, err := eng.store.DeleteListingsOlderThan(ctx, eng.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("deleting listings: %w", err)
	}

	metrics.CleanupDeletedTotal.Add(float64(deleted))
	metrics.CleanupLastSuccessTimestamp.SetToCurrentTime()
	eng.log.Info("retention cleanup complete", "deleted", deleted, "retention", retention)
	return deleted, nil
}

// ParseAsOfDate parses a YYYY-MM-DD as-of date. An empty string means the
// current day. Dates after the current day are rejected.
func ParseAsOfDate(s string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if s == "" {
		return today, nil
	}

	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidAsOfDate, s)
	}
	if d.After(today) {
		return time.Time{}, fmt.Errorf("%w: %s is in the future", ErrInvalidAsOfDate, s)
	}
	return d, nil
}
