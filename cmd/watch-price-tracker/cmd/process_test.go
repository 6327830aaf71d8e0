package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/watch-price-tracker/internal/engine"
	"github.com/donaldgifford/watch-price-tracker/internal/sink"
	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

func TestOpenSink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name     string
		kind     string
		path     string
		inserter sink.ListingInserter
		wantErr  string
	}{
		{name: "csv", kind: sinkCSV, path: filepath.Join(dir, "out.csv")},
		{name: "sqlite", kind: sinkSQLite, path: filepath.Join(dir, "out.db")},
		{name: "postgres without store", kind: sinkPostgres, wantErr: "postgres output"},
		{name: "unknown", kind: "parquet", wantErr: `unknown output "parquet"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := openSink(context.Background(), tt.kind, tt.path, tt.inserter)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.FileExists(t, tt.path)
			require.NoError(t, w.Close())
		})
	}
}

func TestOpenSink_PostgresNoStoreIsErrNoStore(t *testing.T) {
	t.Parallel()

	_, err := openSink(context.Background(), sinkPostgres, "", nil)
	require.ErrorIs(t, err, engine.ErrNoStore)
}

func TestPrintProcessSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printProcessSummary(&buf, &engine.IngestResult{
		RowsRead:     4,
		RowsSaved:    2,
		RowsRejected: 2,
		Rejected: map[domain.RejectReason]int{
			domain.RejectTooShort:  1,
			domain.RejectDuplicate: 1,
		},
		Errors: []engine.RowError{
			{Row: 1, Reference: "rolex 126610ln", Error: "amount exceeds 50000"},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Rows read:")
	assert.Contains(t, out, "Rows saved:")
	assert.Regexp(t, `duplicate:\s+1`, out)
	assert.Regexp(t, `too_short:\s+1`, out)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("duplicate")), bytes.Index(buf.Bytes(), []byte("too_short")))
	assert.Contains(t, out, "amount exceeds 50000 (rolex 126610ln)")
}
