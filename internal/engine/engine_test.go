package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/watch-price-tracker/internal/loader"
	"github.com/donaldgifford/watch-price-tracker/internal/metrics"
	"github.com/donaldgifford/watch-price-tracker/internal/sink"
	storeMocks "github.com/donaldgifford/watch-price-tracker/internal/store/mocks"
	"github.com/donaldgifford/watch-price-tracker/pkg/extract"
	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)

func newTestPipeline(t *testing.T) *extract.Pipeline {
	t.Helper()
	p, err := extract.New(nil, extract.WithWorkers(2), extract.WithLogger(quietLogger()))
	require.NoError(t, err)
	return p
}

func newTestEngine(t *testing.T, ms *storeMocks.MockStore, opts ...EngineOption) *Engine {
	t.Helper()
	opts = append([]EngineOption{
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return fixedNow }),
	}, opts...)
	return NewEngine(ms, newTestPipeline(t), opts...)
}

const uploadBody = "rolex 126610ln black hkd 98000 full set\n" +
	"short\n" +
	"rolex 126610ln black hkd 98000 full set\n" +
	"omega 3510.50 white usd 3200 -5 naked\n"

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	p := newTestPipeline(t)

	eng := NewEngine(ms, p)
	assert.InDelta(t, DefaultMaxAmount, eng.maxAmount, 0)
	assert.NotNil(t, eng.log)
	assert.NotNil(t, eng.now)
	assert.Same(t, p, eng.Pipeline())
}

func TestNewEngine_WithOptions(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	eng := NewEngine(nil, newTestPipeline(t), WithLogger(l), WithMaxAmount(5e6))
	assert.Same(t, l, eng.log)
	assert.InDelta(t, 5e6, eng.maxAmount, 0)

	eng = NewEngine(nil, newTestPipeline(t), WithMaxAmount(0))
	assert.InDelta(t, DefaultMaxAmount, eng.maxAmount, 0)
}

func TestIngest_Success(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	sourceDate := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	ms.EXPECT().CreateUpload(mock.Anything, mock.MatchedBy(func(u *domain.Upload) bool {
		return u.Filename == "prices 03_14_24.txt" &&
			u.AsOfDate.Equal(asOf) &&
			u.SourceDate != nil && u.SourceDate.Equal(sourceDate) &&
			u.Status == domain.UploadProcessing
	})).RunAndReturn(func(_ context.Context, u *domain.Upload) error {
		u.ID = "upload-1"
		return nil
	}).Once()

	var inserted []domain.Listing
	ms.EXPECT().InsertListings(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, l []domain.Listing) (int, error) {
			inserted = l
			return len(l), nil
		}).Once()

	ms.EXPECT().FinishUpload(mock.Anything, mock.MatchedBy(func(u *domain.Upload) bool {
		return u.ID == "upload-1" &&
			u.Status == domain.UploadCompleted &&
			u.RowsRead == 4 && u.RowsSaved == 2 && u.RowsRejected == 2 &&
			u.ErrorText == ""
	})).Return(nil).Once()

	res, err := eng.Ingest(context.Background(), IngestRequest{
		Filename: "prices 03_14_24.txt",
		Body:     strings.NewReader(uploadBody),
		AsOfDate: asOf,
	})
	require.NoError(t, err)

	assert.Equal(t, "upload-1", res.UploadID)
	assert.Equal(t, 4, res.RowsRead)
	assert.Equal(t, 2, res.RowsSaved)
	assert.Equal(t, 2, res.RowsRejected)
	assert.Equal(t, 1, res.Rejected[domain.RejectTooShort])
	assert.Equal(t, 1, res.Rejected[domain.RejectDuplicate])
	assert.Empty(t, res.Errors)

	require.Len(t, inserted, 2)
	for _, l := range inserted {
		assert.Equal(t, "upload-1", l.UploadID)
		assert.Equal(t, asOf, l.AsOfDate)
		require.NotNil(t, l.SourceDate)
	}
	assert.Equal(t, "rolex 126610ln", inserted[0].Reference)
	assert.Equal(t, "omega 3510.50", inserted[1].Reference)
}

func TestIngest_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	ms.EXPECT().CreateUpload(mock.Anything, mock.MatchedBy(func(u *domain.Upload) bool {
		return u.Filename == "scan.pdf" && u.Status == domain.UploadProcessing
	})).RunAndReturn(func(_ context.Context, u *domain.Upload) error {
		u.ID = "upload-pdf"
		return nil
	}).Once()
	ms.EXPECT().FinishUpload(mock.Anything, mock.MatchedBy(func(u *domain.Upload) bool {
		return u.ID == "upload-pdf" &&
			u.Status == domain.UploadFailed &&
			strings.Contains(u.ErrorText, "unsupported file format") &&
			u.RowsRead == 0
	})).Return(nil).Once()

	_, err := eng.Ingest(context.Background(), IngestRequest{
		Filename: "scan.pdf",
		Body:     strings.NewReader("%PDF"),
		AsOfDate: fixedNow,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, loader.ErrUnsupportedFormat))
}

func TestIngest_CreateUploadFails(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	ms.EXPECT().CreateUpload(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	_, err := eng.Ingest(context.Background(), IngestRequest{
		Filename: "prices.csv",
		Body:     strings.NewReader(uploadBody),
		AsOfDate: fixedNow,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording upload")
}

func TestIngest_InsertFailsMarksUploadFailed(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	ms.EXPECT().CreateUpload(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, u *domain.Upload) error {
			u.ID = "upload-2"
			return nil
		}).Once()
	ms.EXPECT().InsertListings(mock.Anything, mock.Anything).
		Return(0, errors.New("copy failed")).Once()
	ms.EXPECT().FinishUpload(mock.Anything, mock.MatchedBy(func(u *domain.Upload) bool {
		return u.Status == domain.UploadFailed &&
			strings.Contains(u.ErrorText, "copy failed") &&
			u.RowsRead == 4
	})).Return(nil).Once()

	before := ptestutil.ToFloat64(metrics.UploadsTotal.WithLabelValues(string(domain.UploadFailed)))

	_, err := eng.Ingest(context.Background(), IngestRequest{
		Filename: "prices.txt",
		Body:     strings.NewReader(uploadBody),
		AsOfDate: fixedNow,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing listings")

	after := ptestutil.ToFloat64(metrics.UploadsTotal.WithLabelValues(string(domain.UploadFailed)))
	assert.GreaterOrEqual(t, after-before, 1.0)
}

func TestIngest_UnreadableWorkbook(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	ms.EXPECT().CreateUpload(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().FinishUpload(mock.Anything, mock.MatchedBy(func(u *domain.Upload) bool {
		return u.Status == domain.UploadFailed && strings.Contains(u.ErrorText, "reading upload")
	})).Return(nil).Once()

	_, err := eng.Ingest(context.Background(), IngestRequest{
		Filename: "prices.xlsx",
		Body:     strings.NewReader("not a zip"),
		AsOfDate: fixedNow,
	})
	require.Error(t, err)
}

func TestIngest_NoStore(t *testing.T) {
	t.Parallel()

	eng := NewEngine(nil, newTestPipeline(t))
	_, err := eng.Ingest(context.Background(), IngestRequest{Filename: "a.csv"})
	require.ErrorIs(t, err, ErrNoStore)
}

func TestBuildListings_AmountCeiling(t *testing.T) {
	t.Parallel()

	eng := NewEngine(nil, newTestPipeline(t), WithMaxAmount(50000))

	upload := &domain.Upload{ID: "u1", AsOfDate: fixedNow}
	records := []domain.FieldRecord{
		{Reference: "rolex 126610ln", Amount: ptr(98000.0), FinalAmount: ptr(98000.0)},
		{Reference: "tudor 79230n", Amount: ptr(26000.0), FinalAmount: ptr(26000.0)},
		{Reference: "omega 3510.50"},
	}

	listings, rowErrs := eng.BuildListings(records, upload)
	require.Len(t, listings, 3)

	assert.Nil(t, listings[0].Amount)
	assert.Nil(t, listings[0].FinalAmount)
	assert.Equal(t, "rolex 126610ln", listings[0].Reference)
	require.NotNil(t, listings[1].FinalAmount)
	assert.InDelta(t, 26000.0, *listings[1].FinalAmount, 0)

	require.Len(t, rowErrs, 1)
	assert.Equal(t, RowError{
		Row:       0,
		Reference: "rolex 126610ln",
		Price:     "98000",
		Error:     "amount exceeds 50000",
	}, rowErrs[0])

	// The caller's records are untouched.
	require.NotNil(t, records[0].Amount)
}

func TestProcessFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "prices 03_14_24.txt")
	require.NoError(t, os.WriteFile(path, []byte(uploadBody), 0o600))

	var buf bytes.Buffer
	w, err := sink.NewCSVWriterTo(&buf)
	require.NoError(t, err)

	eng := NewEngine(nil, newTestPipeline(t), WithLogger(quietLogger()))
	res, err := eng.ProcessFile(context.Background(), path, fixedNow, w)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.NotEmpty(t, res.UploadID)
	assert.Equal(t, 4, res.RowsRead)
	assert.Equal(t, 2, res.RowsSaved)
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"), "header plus two rows")
	assert.Contains(t, buf.String(), res.UploadID)
}

func TestProcessFile_Missing(t *testing.T) {
	t.Parallel()

	eng := NewEngine(nil, newTestPipeline(t))
	_, err := eng.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), fixedNow, nil)
	require.Error(t, err)
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	ms.EXPECT().DeleteListingsOlderThan(mock.Anything, fixedNow.Add(-48*time.Hour)).Return(7, nil).Once()

	n, err := eng.Cleanup(context.Background(), 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Positive(t, ptestutil.ToFloat64(metrics.CleanupLastSuccessTimestamp))
}

func TestCleanup_Error(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(t, ms)

	ms.EXPECT().DeleteListingsOlderThan(mock.Anything, mock.Anything).Return(0, errors.New("db down")).Once()

	_, err := eng.Cleanup(context.Background(), time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deleting listings")
}

func TestParseAsOfDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "empty is today", in: "", want: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)},
		{name: "today", in: "2024-03-16", want: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)},
		{name: "past", in: "2023-12-31", want: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "future", in: "2024-03-17", wantErr: true},
		{name: "wrong layout", in: "03/16/2024", wantErr: true},
		{name: "impossible date", in: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAsOfDate(tt.in, fixedNow)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAsOfDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr[T any](v T) *T { return &v }
