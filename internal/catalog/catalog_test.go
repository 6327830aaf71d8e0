package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/watch-price-tracker/internal/catalog"
	storeMocks "github.com/donaldgifford/watch-price-tracker/internal/store/mocks"
	"github.com/donaldgifford/watch-price-tracker/pkg/extract"
	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

var _ extract.Catalog = (*catalog.Catalog)(nil)

func TestCatalog_Brand(t *testing.T) {
	t.Parallel()

	c := catalog.New([]domain.BrandCode{
		{RefCode: "126610LN", Brand: "Rolex"},
		{RefCode: " 15500st ", Brand: "Audemars Piguet"},
		{RefCode: "", Brand: "Nobody"},
		{RefCode: "5711", Brand: ""},
		{RefCode: "15500ST", Brand: "AP"},
	})

	assert.Equal(t, 2, c.Len())

	brand, ok := c.Brand("126610ln")
	assert.True(t, ok)
	assert.Equal(t, "Rolex", brand)

	brand, ok = c.Brand("15500St")
	assert.True(t, ok)
	assert.Equal(t, "AP", brand, "later duplicates win")

	_, ok = c.Brand("5711")
	assert.False(t, ok)

	assert.Equal(t, []domain.BrandCode{
		{RefCode: "126610ln", Brand: "Rolex"},
		{RefCode: "15500st", Brand: "AP"},
	}, c.Codes())
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    []domain.BrandCode
		wantErr error
	}{
		{
			name: "header in any order",
			in:   "ref_code,Brand\n126610LN,Rolex\n15500st, Audemars Piguet\n",
			want: []domain.BrandCode{
				{RefCode: "126610ln", Brand: "Rolex"},
				{RefCode: "15500st", Brand: "Audemars Piguet"},
			},
		},
		{
			name: "ref_code_lo header",
			in:   "Brand,ref_code_lo\nPatek Philippe,5711\n",
			want: []domain.BrandCode{{RefCode: "5711", Brand: "Patek Philippe"}},
		},
		{
			name: "headerless rows are brand then code",
			in:   "Tudor,79230N\n",
			want: []domain.BrandCode{{RefCode: "79230n", Brand: "Tudor"}},
		},
		{
			name: "empty file",
			in:   "",
		},
		{
			name:    "missing code",
			in:      "brand,ref_code\nRolex,\n",
			wantErr: catalog.ErrEmptyCode,
		},
		{
			name:    "short row",
			in:      "Rolex\n",
			wantErr: catalog.ErrEmptyCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := catalog.ReadCSV(strings.NewReader(tt.in))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "brands.csv")
	require.NoError(t, os.WriteFile(path, []byte("brand,ref_code\nRolex,126610ln\n"), 0o600))

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestLoadStore(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListBrandCodes(mock.Anything).
		Return([]domain.BrandCode{{RefCode: "126610ln", Brand: "Rolex"}}, nil).
		Once()

	c, err := catalog.LoadStore(context.Background(), ms)
	require.NoError(t, err)

	brand, ok := c.Brand("126610LN")
	assert.True(t, ok)
	assert.Equal(t, "Rolex", brand)
}

func TestLoadStore_Error(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListBrandCodes(mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := catalog.LoadStore(context.Background(), ms)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing brand codes")
}

func TestCatalog_InPipeline(t *testing.T) {
	t.Parallel()

	c := catalog.New([]domain.BrandCode{{RefCode: "126610ln", Brand: "Rolex"}})
	p, err := extract.New(nil, extract.WithCatalog(c), extract.WithWorkers(1))
	require.NoError(t, err)

	rec, reason := p.Evaluate("rolex 126610ln black unworn 2023 hkd 98,000")
	require.Equal(t, domain.RejectNone, reason)
	assert.Equal(t, "Rolex", rec.Brand)
}
