package sink

import (
	"context"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// ListingInserter is the store method StoreWriter needs.
type ListingInserter interface {
	InsertListings(ctx context.Context, listings []domain.Listing) (int, error)
}

// StoreWriter writes listings to the PostgreSQL store.
type StoreWriter struct {
	store ListingInserter
}

// NewStoreWriter wraps s.
func NewStoreWriter(s ListingInserter) *StoreWriter {
	return &StoreWriter{store: s}
}

// Write bulk inserts listings.
func (w *StoreWriter) Write(ctx context.Context, listings []domain.Listing) (int, error) {
	return w.store.InsertListings(ctx, listings)
}

// Close is a no-op; the store outlives the writer.
func (*StoreWriter) Close() error {
	return nil
}
