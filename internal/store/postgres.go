package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

const (
	defaultPoolSize       = 10
	defaultConnectRetries = 4
	defaultRetryDelay     = 4 * time.Second
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PoolOptions tunes the connection pool and the startup connection attempts.
type PoolOptions struct {
	MaxConns       int32
	ConnectRetries int
	RetryDelay     time.Duration
	Logger         *slog.Logger
}

// NewPostgresStore creates a new PostgresStore with connection pooling. The
// database is pinged up to ConnectRetries times, RetryDelay apart, so the
// server can start alongside a database that is still booting.
func NewPostgresStore(ctx context.Context, connString string, opts PoolOptions) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.ConnectRetries <= 0 {
		opts.ConnectRetries = defaultConnectRetries
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pingWithRetry(ctx, pool, opts); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

func pingWithRetry(ctx context.Context, pool *pgxpool.Pool, opts PoolOptions) error {
	var err error
	for attempt := 1; attempt <= opts.ConnectRetries; attempt++ {
		if err = pool.Ping(ctx); err == nil {
			return nil
		}
		if attempt == opts.ConnectRetries {
			break
		}

		opts.Logger.Warn("database not reachable, retrying",
			"attempt", attempt,
			"max_attempts", opts.ConnectRetries,
			"delay", opts.RetryDelay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("pinging database: %w", ctx.Err())
		case <-time.After(opts.RetryDelay):
		}
	}
	return fmt.Errorf("pinging database after %d attempts: %w", opts.ConnectRetries, err)
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateUpload inserts an upload row and fills in its ID and upload time.
func (s *PostgresStore) CreateUpload(ctx context.Context, u *domain.Upload) error {
	if u.Status == "" {
		u.Status = domain.UploadProcessing
	}

	args := pgx.NamedArgs{
		"filename":    u.Filename,
		"as_of_date":  u.AsOfDate,
		"source_date": u.SourceDate,
		"status":      string(u.Status),
	}

	if err := s.pool.QueryRow(ctx, queryCreateUpload, args).Scan(&u.ID, &u.UploadedAt); err != nil {
		return fmt.Errorf("inserting upload: %w", err)
	}
	return nil
}

// FinishUpload stores the final status and row counts of an upload.
func (s *PostgresStore) FinishUpload(ctx context.Context, u *domain.Upload) error {
	args := pgx.NamedArgs{
		"id":            u.ID,
		"status":        string(u.Status),
		"rows_read":     u.RowsRead,
		"rows_saved":    u.RowsSaved,
		"rows_rejected": u.RowsRejected,
		"error_text":    u.ErrorText,
	}

	err := s.pool.QueryRow(ctx, queryFinishUpload, args).Scan(&u.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("upload %s: %w", u.ID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("finishing upload: %w", err)
	}
	return nil
}

// GetUpload retrieves an upload by ID.
func (s *PostgresStore) GetUpload(ctx context.Context, id string) (*domain.Upload, error) {
	u := &domain.Upload{}
	err := scanUpload(s.pool.QueryRow(ctx, queryGetUpload, id), u)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("upload %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying upload: %w", err)
	}
	return u, nil
}

// ListUploads returns the most recent uploads, newest first.
func (s *PostgresStore) ListUploads(ctx context.Context, limit int) ([]domain.Upload, error) {
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListUploads, limit)
	if err != nil {
		return nil, fmt.Errorf("querying uploads: %w", err)
	}
	defer rows.Close()

	var uploads []domain.Upload
	for rows.Next() {
		var u domain.Upload
		if err := scanUpload(rows, &u); err != nil {
			return nil, fmt.Errorf("scanning upload: %w", err)
		}
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

// RecoverStaleUploads marks uploads stuck in processing for longer than
// olderThan as failed. Returns the number of rows updated.
func (s *PostgresStore) RecoverStaleUploads(ctx context.Context, olderThan time.Duration) (int, error) {
	tag, err := s.pool.Exec(ctx, queryMarkStaleUploadsFailed, time.Now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("marking stale uploads failed: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// InsertListings bulk-loads listings with COPY. Returns the number of rows
// written.
func (s *PostgresStore) InsertListings(ctx context.Context, listings []domain.Listing) (int, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	n, err := s.pool.CopyFrom(
		ctx,
		pgx.Identifier{"listings"},
		listingCopyColumns,
		pgx.CopyFromSlice(len(listings), func(i int) ([]any, error) {
			return listingCopyRow(&listings[i]), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copying listings: %w", err)
	}
	return int(n), nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	opts *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	// Get total count.
	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	// Get data rows.
	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, total, nil
}

// DeleteListingsOlderThan removes listings created before cutoff and returns
// how many were deleted.
func (s *PostgresStore) DeleteListingsOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteListingsOlderThan, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting old listings: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// CountListings returns the number of stored listings.
func (s *PostgresStore) CountListings(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, queryCountListings).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting listings: %w", err)
	}
	return n, nil
}

// ListBrandCodes returns every reference code to brand mapping.
func (s *PostgresStore) ListBrandCodes(ctx context.Context) ([]domain.BrandCode, error) {
	rows, err := s.pool.Query(ctx, queryListBrandCodes)
	if err != nil {
		return nil, fmt.Errorf("querying brand codes: %w", err)
	}
	defer rows.Close()

	var codes []domain.BrandCode
	for rows.Next() {
		var c domain.BrandCode
		if err := rows.Scan(&c.RefCode, &c.Brand); err != nil {
			return nil, fmt.Errorf("scanning brand code: %w", err)
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

// UpsertBrandCodes inserts or renames brand codes in one batch. Codes are
// lower-cased. Returns the number of rows inserted or changed.
func (s *PostgresStore) UpsertBrandCodes(ctx context.Context, codes []domain.BrandCode) (int, error) {
	if len(codes) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, c := range codes {
		batch.Queue(queryUpsertBrandCode, strings.ToLower(strings.TrimSpace(c.RefCode)), strings.TrimSpace(c.Brand))
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	changed := 0
	for range codes {
		tag, err := results.Exec()
		if err != nil {
			return changed, fmt.Errorf("upserting brand code: %w", err)
		}
		changed += int(tag.RowsAffected())
	}

	return changed, nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanUpload(row scannable, u *domain.Upload) error {
	var status string
	if err := row.Scan(
		&u.ID, &u.Filename, &u.AsOfDate, &u.SourceDate, &status,
		&u.RowsRead, &u.RowsSaved, &u.RowsRejected, &u.ErrorText,
		&u.UploadedAt, &u.CompletedAt,
	); err != nil {
		return err
	}
	u.Status = domain.UploadStatus(status)
	return nil
}

// scanListing scans a row selected with baseListingsSelect.
func scanListing(row scannable, l *domain.Listing) error {
	var currency string
	if err := row.Scan(
		&l.ID, &l.UploadID, &l.Reference, &l.Brand, &currency,
		&l.Amount, &l.DiscountPct, &l.FinalAmount,
		&l.Conditions, &l.Year, &l.Completeness, &l.Colors, &l.Bracelet,
		&l.Text, &l.SourceDate, &l.AsOfDate, &l.CreatedAt,
	); err != nil {
		return err
	}
	l.Currency = domain.Currency(currency)
	return nil
}

// listingCopyRow orders a listing's values as listingCopyColumns.
func listingCopyRow(l *domain.Listing) []any {
	var uploadID any
	if id, err := uuid.Parse(l.UploadID); err == nil {
		uploadID = id
	}

	return []any{
		uploadID, l.Reference, l.Brand, string(l.Currency),
		l.Amount, l.DiscountPct, l.FinalAmount,
		nonNil(l.Conditions), l.Year, l.Completeness, nonNil(l.Colors), l.Bracelet,
		l.Text, l.SourceDate, l.AsOfDate,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
