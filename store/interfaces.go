package store

import (
	"context"

	"github.com/poiesic/rankit/catalog"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// LineItemRepository provides operations for managing catalog line items.
type LineItemRepository interface {
	Repository

	// AddLineItems adds one or more line items to storage.
	// Items with Id=0 get content-based IDs (IDFromContent of ContentKey).
	// Sets InsertedAt and UpdatedAt timestamps.
	// Returns the items with IDs and timestamps populated.
	AddLineItems(ctx context.Context, items ...*catalog.LineItem) ([]*catalog.LineItem, error)

	// UpdateLineItems updates existing line items.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any item doesn't exist.
	UpdateLineItems(ctx context.Context, items ...*catalog.LineItem) ([]*catalog.LineItem, error)

	// DeleteLineItems removes line items by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any item doesn't exist.
	DeleteLineItems(ctx context.Context, ids ...catalog.ID) error

	// GetLineItem retrieves a single line item by ID.
	// Returns ErrNotFound if the item doesn't exist.
	GetLineItem(ctx context.Context, id catalog.ID) (*catalog.LineItem, error)

	// GetLineItems retrieves multiple line items by their IDs.
	// Returns only the items that exist (no error for missing items).
	GetLineItems(ctx context.Context, ids ...catalog.ID) ([]*catalog.LineItem, error)

	// GetAllLineItems retrieves every line item, in key order. This is
	// the load path for in-memory ranking.
	GetAllLineItems(ctx context.Context) ([]*catalog.LineItem, error)

	// FindLineItemByName finds a line item by its exact name using the
	// name index. Returns ErrNotFound if no matching item exists.
	FindLineItemByName(ctx context.Context, name string) (*catalog.LineItem, error)
}
