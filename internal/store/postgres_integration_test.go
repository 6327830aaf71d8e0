//go:build integration

package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/watch-price-tracker/internal/store"
	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("wpt_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, store.PoolOptions{ConnectRetries: 2, RetryDelay: time.Second})
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func ptr[T any](v T) *T { return &v }

func testUpload(t *testing.T, s *store.PostgresStore) *domain.Upload {
	t.Helper()

	u := &domain.Upload{
		Filename:   "03_15_24.csv",
		AsOfDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		SourceDate: ptr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, s.CreateUpload(context.Background(), u))
	return u
}

func testListings(uploadID string) []domain.Listing {
	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return []domain.Listing{
		{
			UploadID: uploadID,
			AsOfDate: asOf,
			FieldRecord: domain.FieldRecord{
				Reference:    "rolex 126610ln",
				Brand:        "Rolex",
				Currency:     domain.CurrencyHKD,
				Amount:       ptr(98000.0),
				FinalAmount:  ptr(98000.0),
				Conditions:   []string{"unworn"},
				Year:         ptr(2023),
				Completeness: "full set",
				Colors:       []string{"black"},
				Text:         "rolex 126610ln black unworn full set 2023 hkd 98,000",
			},
		},
		{
			UploadID: uploadID,
			AsOfDate: asOf,
			FieldRecord: domain.FieldRecord{
				Reference:   "ap 15500st",
				Brand:       "Audemars Piguet",
				Amount:      ptr(250000.0),
				DiscountPct: ptr(5.0),
				FinalAmount: ptr(237500.0),
				Colors:      []string{"blue"},
				Text:        "ap 15500st blue 250,000 -5",
			},
		},
		{
			AsOfDate: asOf,
			FieldRecord: domain.FieldRecord{
				Reference: "tudor 79230n",
				Text:      "tudor 79230n",
			},
		},
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_Migrate_Idempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_Uploads(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := testUpload(t, s)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, domain.UploadProcessing, u.Status)
	assert.False(t, u.UploadedAt.IsZero())

	u.Status = domain.UploadCompleted
	u.RowsRead, u.RowsSaved, u.RowsRejected = 10, 7, 3
	require.NoError(t, s.FinishUpload(ctx, u))
	require.NotNil(t, u.CompletedAt)

	got, err := s.GetUpload(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UploadCompleted, got.Status)
	assert.Equal(t, 7, got.RowsSaved)
	assert.Empty(t, got.ErrorText)
	require.NotNil(t, got.SourceDate)

	uploads, err := s.ListUploads(ctx, 10)
	require.NoError(t, err)
	require.Len(t, uploads, 1)
	assert.Equal(t, u.ID, uploads[0].ID)

	_, err = s.GetUpload(ctx, "00000000-0000-0000-0000-000000000000")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestPostgresStore_RecoverStaleUploads(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := testUpload(t, s)

	n, err := s.RecoverStaleUploads(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.RecoverStaleUploads(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.GetUpload(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UploadFailed, got.Status)
	assert.Equal(t, "interrupted", got.ErrorText)
}

func TestPostgresStore_Listings(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := testUpload(t, s)

	n, err := s.InsertListings(ctx, testListings(u.ID))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	count, err := s.CountListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	t.Run("filter by brand", func(t *testing.T) {
		got, total, err := s.ListListings(ctx, &store.ListingQuery{Brand: ptr("rolex")})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, "rolex 126610ln", got[0].Reference)
		assert.Equal(t, domain.CurrencyHKD, got[0].Currency)
		assert.Equal(t, []string{"unworn"}, got[0].Conditions)
		require.NotNil(t, got[0].Year)
		assert.Equal(t, 2023, *got[0].Year)
		assert.Equal(t, u.ID, got[0].UploadID)
	})

	t.Run("filter by color and amount", func(t *testing.T) {
		got, total, err := s.ListListings(ctx, &store.ListingQuery{
			Color:          ptr("blue"),
			MinFinalAmount: ptr(200000.0),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].DiscountPct)
		assert.InDelta(t, 5.0, *got[0].DiscountPct, 0.001)
	})

	t.Run("listing without upload", func(t *testing.T) {
		got, _, err := s.ListListings(ctx, &store.ListingQuery{Reference: ptr("tudor")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Empty(t, got[0].UploadID)
		assert.Nil(t, got[0].Amount)
		assert.Empty(t, got[0].Conditions)
	})

	t.Run("order by final amount", func(t *testing.T) {
		got, total, err := s.ListListings(ctx, &store.ListingQuery{OrderBy: "final_amount", Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, got, 2)
		assert.Equal(t, "rolex 126610ln", got[0].Reference)
	})

	t.Run("delete older than", func(t *testing.T) {
		deleted, err := s.DeleteListingsOlderThan(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Zero(t, deleted)

		deleted, err = s.DeleteListingsOlderThan(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 3, deleted)
	})
}

func TestPostgresStore_BrandCodes(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	n, err := s.UpsertBrandCodes(ctx, []domain.BrandCode{
		{RefCode: "126610LN", Brand: "Rolex"},
		{RefCode: "15500st", Brand: "Audemars Piguet"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Unchanged rows are not counted.
	n, err = s.UpsertBrandCodes(ctx, []domain.BrandCode{
		{RefCode: "126610ln", Brand: "Rolex"},
		{RefCode: "15500st", Brand: "AP"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	codes, err := s.ListBrandCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.BrandCode{
		{RefCode: "126610ln", Brand: "Rolex"},
		{RefCode: "15500st", Brand: "AP"},
	}, codes)
}

func TestPostgresStore_JobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id, err := s.InsertJobRun(ctx, "cleanup")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NoError(t, s.CompleteJobRun(ctx, id, "succeeded", "", 12))

	runs, err := s.ListJobRuns(ctx, "cleanup", 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "succeeded", runs[0].Status)
	require.NotNil(t, runs[0].RowsAffected)
	assert.Equal(t, 12, *runs[0].RowsAffected)

	_, err = s.InsertJobRun(ctx, "cleanup")
	require.NoError(t, err)

	crashed, err := s.RecoverStaleJobRuns(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, crashed)

	latest, err := s.ListLatestJobRuns(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, "crashed", latest[0].Status)
}

func TestPostgresStore_SchedulerLock(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	ok, err := s.AcquireSchedulerLock(ctx, "cleanup", "host-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.AcquireSchedulerLock(ctx, "cleanup", "host-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.ReleaseSchedulerLock(ctx, "cleanup", "host-a"))

	ok, err = s.AcquireSchedulerLock(ctx, "cleanup", "host-b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
