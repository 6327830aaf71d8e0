// Package catalog maps reference codes to watch brands.
package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// ErrEmptyCode is returned for a catalog row without a reference code or brand.
var ErrEmptyCode = errors.New("empty reference code or brand")

// Catalog is an immutable, case-insensitive reference code to brand lookup.
// It satisfies extract.Catalog.
type Catalog struct {
	brands map[string]string
}

// New builds a Catalog. Later codes win over earlier duplicates.
func New(codes []domain.BrandCode) *Catalog {
	c := &Catalog{brands: make(map[string]string, len(codes))}
	for _, code := range codes {
		ref := normalizeCode(code.RefCode)
		brand := strings.TrimSpace(code.Brand)
		if ref == "" || brand == "" {
			continue
		}
		c.brands[ref] = brand
	}
	return c
}

// Brand returns the brand for a reference token.
func (c *Catalog) Brand(token string) (string, bool) {
	b, ok := c.brands[normalizeCode(token)]
	return b, ok
}

// Len returns the number of codes.
func (c *Catalog) Len() int {
	return len(c.brands)
}

// Codes returns every mapping sorted by reference code.
func (c *Catalog) Codes() []domain.BrandCode {
	codes := make([]domain.BrandCode, 0, len(c.brands))
	for ref, brand := range c.brands {
		codes = append(codes, domain.BrandCode{RefCode: ref, Brand: brand})
	}
	slices.SortFunc(codes, func(a, b domain.BrandCode) int {
		return strings.Compare(a.RefCode, b.RefCode)
	})
	return codes
}

func normalizeCode(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BrandCodeLister is the store method the catalog loads from.
type BrandCodeLister interface {
	ListBrandCodes(ctx context.Context) ([]domain.BrandCode, error)
}

// LoadStore builds a Catalog from the brand_codes table.
func LoadStore(ctx context.Context, s BrandCodeLister) (*Catalog, error) {
	codes, err := s.ListBrandCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing brand codes: %w", err)
	}
	return New(codes), nil
}

// LoadFile builds a Catalog from a CSV file. See ReadCSV.
func LoadFile(path string) (*Catalog, error) {
	codes, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(codes), nil
}

// ReadFile reads brand codes from a CSV file.
func ReadFile(path string) ([]domain.BrandCode, error) {
	f, err := os.Open(path) //nolint:gosec // path from config
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	codes, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return codes, nil
}

// ReadCSV reads brand codes. A header naming "brand" and "ref_code" (or
// "ref_code_lo") columns sets their positions; without one, rows are
// brand,ref_code.
func ReadCSV(r io.Reader) ([]domain.BrandCode, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	brandCol, refCol, hasHeader := headerColumns(records[0])
	if hasHeader {
		records = records[1:]
	}

	codes := make([]domain.BrandCode, 0, len(records))
	for i, rec := range records {
		if len(rec) <= max(brandCol, refCol) {
			return nil, fmt.Errorf("row %d: %w", i+1, ErrEmptyCode)
		}
		code := domain.BrandCode{
			RefCode: normalizeCode(rec[refCol]),
			Brand:   strings.TrimSpace(rec[brandCol]),
		}
		if code.RefCode == "" || code.Brand == "" {
			return nil, fmt.Errorf("row %d: %w", i+1, ErrEmptyCode)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func headerColumns(row []string) (brandCol, refCol int, ok bool) {
	brandCol, refCol = -1, -1
	for i, name := range row {
		switch normalizeCode(name) {
		case "brand":
			brandCol = i
		case "ref_code", "ref_code_lo", "reference":
			refCol = i
		}
	}
	if brandCol < 0 || refCol < 0 {
		return 0, 1, false
	}
	return brandCol, refCol, true
}
