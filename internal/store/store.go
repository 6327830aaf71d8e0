// Package store defines the datastore abstraction for watch-price-tracker.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	UploadID       *string
	Brand          *string
	Currency       *string
	Reference      *string // prefix match
	Year           *int
	Condition      *string
	Color          *string
	Completeness   *string
	MinFinalAmount *float64
	MaxFinalAmount *float64
	AsOfDate       *time.Time
	Limit          int // default 50
	Offset         int
	OrderBy        string // "created_at", "final_amount", "year"
}

// Store defines all data access operations for watch-price-tracker.
type Store interface {
	// Uploads
	CreateUpload(ctx context.Context, u *domain.Upload) error
	FinishUpload(ctx context.Context, u *domain.Upload) error
	GetUpload(ctx context.Context, id string) (*domain.Upload, error)
	ListUploads(ctx context.Context, limit int) ([]domain.Upload, error)
	RecoverStaleUploads(ctx context.Context, olderThan time.Duration) (int, error)

	// Listings
	InsertListings(ctx context.Context, listings []domain.Listing) (int, error)
	ListListings(ctx context.Context, opts *ListingQuery) ([]domain.Listing, int, error)
	DeleteListingsOlderThan(ctx context.Context, cutoff time.Time) (int, error)
	CountListings(ctx context.Context) (int, error)

	// Brand codes
	ListBrandCodes(ctx context.Context) ([]domain.BrandCode, error)
	UpsertBrandCodes(ctx context.Context, codes []domain.BrandCode) (int, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
