package domain

import (
	"context"
	"io"
)

// RowParser defines the interface for extracting catalog rows from an
// uploaded workbook.
type RowParser interface {
	ParseCatalog(r io.Reader) ([]Row, error)
}

// ProductRepository defines the interface for catalog persistence.
// ReplaceAll must be atomic with respect to Snapshot: a concurrent search
// sees either the previous catalog or the new one, never a mix.
type ProductRepository interface {
	// ReplaceAll swaps the entire catalog for the given products,
	// preserving their order.
	ReplaceAll(ctx context.Context, products []Product) error

	// Snapshot returns a consistent view of the catalog in insertion order.
	Snapshot(ctx context.Context) ([]Product, error)

	// Count returns the number of products currently stored.
	Count(ctx context.Context) (int, error)

	// Clear removes every product and returns how many were deleted.
	Clear(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
