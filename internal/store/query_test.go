package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestListingQuery_ToSQL(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		query         ListingQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: ListingQuery{},
			wantDataHas: []string{
				"FROM listings",
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM listings",
		},
		{
			name:         "brand filter is case insensitive",
			query:        ListingQuery{Brand: ptr("Rolex")},
			wantDataHas:  []string{"WHERE LOWER(brand) = LOWER($1)"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE LOWER(brand) = LOWER($1)",
			wantArgs:     []any{"Rolex"},
		},
		{
			name:         "currency is upper cased",
			query:        ListingQuery{Currency: ptr("hkd")},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE currency = $1",
			wantArgs:     []any{"HKD"},
		},
		{
			name:         "reference prefix match",
			query:        ListingQuery{Reference: ptr("1266")},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE reference ILIKE $1",
			wantArgs:     []any{"1266%"},
		},
		{
			name:         "condition uses array membership",
			query:        ListingQuery{Condition: ptr("unworn")},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE $1 = ANY(conditions)",
			wantArgs:     []any{"unworn"},
		},
		{
			name:         "color uses array membership",
			query:        ListingQuery{Color: ptr("black")},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE $1 = ANY(colors)",
			wantArgs:     []any{"black"},
		},
		{
			name:         "as of date filter",
			query:        ListingQuery{AsOfDate: &asOf},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE as_of_date = $1",
			wantArgs:     []any{asOf},
		},
		{
			name: "multiple filters with correct parameter numbering",
			query: ListingQuery{
				UploadID:       ptr("0b6f1f0e-7c1e-4d8b-9a55-3f7c2a1d9e10"),
				Year:           ptr(2021),
				Completeness:   ptr("full set"),
				MinFinalAmount: ptr(50000.0),
				MaxFinalAmount: ptr(150000.0),
			},
			wantDataHas: []string{
				"upload_id = $1",
				"year = $2",
				"completeness = $3",
				"final_amount >= $4",
				"final_amount <= $5",
				" AND ",
			},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE upload_id = $1 AND year = $2 AND " +
				"completeness = $3 AND final_amount >= $4 AND final_amount <= $5",
			wantArgs: []any{"0b6f1f0e-7c1e-4d8b-9a55-3f7c2a1d9e10", 2021, "full set", 50000.0, 150000.0},
		},
		{
			name:        "order by final amount",
			query:       ListingQuery{OrderBy: "final_amount"},
			wantDataHas: []string{"ORDER BY final_amount ASC NULLS LAST"},
		},
		{
			name:        "order by year",
			query:       ListingQuery{OrderBy: "year"},
			wantDataHas: []string{"ORDER BY year DESC NULLS LAST"},
		},
		{
			name:          "invalid order by falls back to default",
			query:         ListingQuery{OrderBy: "DROP TABLE listings; --"},
			wantDataHas:   []string{"ORDER BY created_at DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name:        "custom limit and offset",
			query:       ListingQuery{Limit: 25, Offset: 100},
			wantDataHas: []string{"LIMIT 25", "OFFSET 100"},
		},
		{
			name:        "negative limit defaults to 50",
			query:       ListingQuery{Limit: -10},
			wantDataHas: []string{"LIMIT 50"},
		},
		{
			name:        "limit exceeding max is capped",
			query:       ListingQuery{Limit: 1000},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name:        "negative offset defaults to 0",
			query:       ListingQuery{Offset: -5},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}

func TestListingCopyRow(t *testing.T) {
	t.Parallel()

	row := listingCopyRow(&domain.Listing{FieldRecord: domain.FieldRecord{Reference: "rolex 126610ln"}})
	require.Len(t, row, len(listingCopyColumns))
	assert.Nil(t, row[0], "missing upload id is NULL")
	assert.Equal(t, []string{}, row[7], "nil conditions become an empty array")
	assert.Equal(t, []string{}, row[10], "nil colors become an empty array")

	row = listingCopyRow(&domain.Listing{UploadID: "0b6f1f0e-7c1e-4d8b-9a55-3f7c2a1d9e10"})
	assert.NotNil(t, row[0])
}
