package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// CSVWriter writes listings as CSV rows under a header. It is safe for
// concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	closer io.Closer
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at path and writes the
// header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path) //nolint:gosec // output path from CLI flag
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w, err := newCSVWriter(f, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

// NewCSVWriterTo writes CSV to w. Close does not close w.
func NewCSVWriterTo(w io.Writer) (*CSVWriter, error) {
	return newCSVWriter(w, nil)
}

func newCSVWriter(w io.Writer, closer io.Closer) (*CSVWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	return &CSVWriter{closer: closer, writer: cw}, nil
}

// Write appends one row per listing.
func (c *CSVWriter) Write(_ context.Context, listings []domain.Listing) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range listings {
		if err := c.writer.Write(flatten(&listings[i])); err != nil {
			return i, fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return 0, fmt.Errorf("csv: flush: %w", err)
	}
	return len(listings), nil
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
