package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/rankit/catalog"
	"github.com/poiesic/rankit/store"
)

// LineItemRepository implements store.LineItemRepository for BadgerDB.
type LineItemRepository struct {
	backend *Backend
}

var _ store.LineItemRepository = (*LineItemRepository)(nil)

// NewLineItemRepository creates a new LineItemRepository.
func NewLineItemRepository(backend *Backend) (*LineItemRepository, error) {
	return &LineItemRepository{
		backend: backend,
	}, nil
}

// Close releases resources. LineItemRepository has no resources to release.
func (r *LineItemRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *LineItemRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddLineItems adds one or more line items to storage.
func (r *LineItemRepository) AddLineItems(ctx context.Context, items ...*catalog.LineItem) ([]*catalog.LineItem, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, item := range items {
			if err := catalog.ValidateLineItem(item); err != nil {
				return err
			}

			// Use content-based ID if not set
			if item.Id == 0 {
				item.Id = catalog.IDFromContent(item.ContentKey())
			}

			// Set timestamps
			item.InsertedAt = time.Now().UTC()
			item.UpdatedAt = item.InsertedAt

			// Store primary record
			key := makeLineItemKey(item.Id)
			value := store.MarshalLineItem(item)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store name index
			nameKey := makeLineItemNameKey(item.Name)
			if err := tx.Set(nameKey, store.MarshalID(item.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return items, err
}

// UpdateLineItems updates existing line items.
func (r *LineItemRepository) UpdateLineItems(ctx context.Context, items ...*catalog.LineItem) ([]*catalog.LineItem, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, item := range items {
			if err := catalog.ValidateLineItem(item); err != nil {
				return err
			}

			key := makeLineItemKey(item.Id)

			// Read old item to detect changes
			old, err := readLineItem(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return store.ErrNotFound
			}

			// Update timestamp
			item.InsertedAt = old.InsertedAt
			item.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := store.MarshalLineItem(item)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update name index if name changed
			if old.Name != item.Name {
				oldNameKey := makeLineItemNameKey(old.Name)
				if err := tx.Delete(oldNameKey); err != nil {
					return err
				}
				newNameKey := makeLineItemNameKey(item.Name)
				if err := tx.Set(newNameKey, store.MarshalID(item.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return items, err
}

// DeleteLineItems removes line items by their IDs.
func (r *LineItemRepository) DeleteLineItems(ctx context.Context, ids ...catalog.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeLineItemKey(id)

			// Read item to get metadata for index cleanup
			item, err := readLineItem(tx, key)
			if err != nil {
				return err
			}
			if item == nil {
				return store.ErrNotFound
			}

			// Delete from name index
			nameKey := makeLineItemNameKey(item.Name)
			if err := tx.Delete(nameKey); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetLineItem retrieves a single line item by ID.
func (r *LineItemRepository) GetLineItem(ctx context.Context, id catalog.ID) (*catalog.LineItem, error) {
	var result *catalog.LineItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeLineItemKey(id)
		var err error
		result, err = readLineItem(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return store.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetLineItems retrieves multiple line items by their IDs.
// Missing IDs are skipped rather than reported as errors.
func (r *LineItemRepository) GetLineItems(ctx context.Context, ids ...catalog.ID) ([]*catalog.LineItem, error) {
	var result []*catalog.LineItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeLineItemKey(id)
			item, err := readLineItem(tx, key)
			if err != nil {
				return err
			}
			if item != nil {
				result = append(result, item)
			}
		}
		return nil
	}, false)
	return result, err
}

// FindLineItemByName finds a line item by its exact name.
func (r *LineItemRepository) FindLineItemByName(ctx context.Context, name string) (*catalog.LineItem, error) {
	var result *catalog.LineItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Look up ID from name index
		nameKey := makeLineItemNameKey(name)
		item, err := tx.Get(nameKey)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return store.ErrNotFound
			}
			return err
		}

		var itemID catalog.ID
		err = item.Value(func(val []byte) error {
			itemID, err = store.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		// Look up full line item
		itemKey := makeLineItemKey(itemID)
		result, err = readLineItem(tx, itemKey)
		if err != nil {
			return err
		}
		if result == nil {
			return store.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAllLineItems retrieves all line items from storage.
func (r *LineItemRepository) GetAllLineItems(ctx context.Context) ([]*catalog.LineItem, error) {
	var results []*catalog.LineItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Create iterator to scan all line item keys
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(lineItemPrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			item := iter.Item()
			key := item.Key()

			// Stop if we've moved past line item keys
			if !hasPrefix(key, prefix) {
				break
			}

			var lineItem *catalog.LineItem
			err := item.Value(func(val []byte) error {
				var err error
				lineItem, err = store.UnmarshalLineItem(val)
				return err
			})
			if err != nil {
				return err
			}

			if lineItem != nil {
				results = append(results, lineItem)
			}
		}
		return nil
	}, false)

	return results, err
}

// Helper methods

// hasPrefix checks if a byte slice has a given prefix
func hasPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == string(prefix)
}

// readLineItem reads a line item from the transaction.
func readLineItem(tx *badger.Txn, key []byte) (*catalog.LineItem, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var lineItem *catalog.LineItem
	err = item.Value(func(val []byte) error {
		var err error
		lineItem, err = store.UnmarshalLineItem(val)
		return err
	})
	return lineItem, err
}
