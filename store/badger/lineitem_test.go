package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/rankit"
	"github.com/poiesic/rankit/catalog"
	"github.com/poiesic/rankit/store"
)

func testItems() []*catalog.LineItem {
	return []*catalog.LineItem{
		{Name: "GPU Server Purchase", Description: "Rack mounted GPU server", Category: "Hardware", Vendor: "Supermicro", AmountCents: 1249900},
		{Name: "Cloud Hosting", Description: "Monthly object storage and compute invoice", Category: "Cloud", Vendor: "Hetzner", AmountCents: 48200},
		{Name: "Maintenance Contract", Description: "Quarterly maintenance contract", Category: "Services", AmountCents: 230000},
	}
}

func TestAddLineItems(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	t.Run("assigns content ids and timestamps", func(t *testing.T) {
		added, err := repo.AddLineItems(ctx, testItems()...)
		require.NoError(t, err)
		require.Len(t, added, 3)
		for _, item := range added {
			assert.NotEqual(t, catalog.ID(0), item.Id)
			assert.False(t, item.InsertedAt.IsZero())
			assert.Equal(t, item.InsertedAt, item.UpdatedAt)
		}
	})

	t.Run("ids are deterministic from content", func(t *testing.T) {
		item := &catalog.LineItem{Name: "Cloud Hosting", Vendor: "Hetzner", Category: "Cloud"}
		assert.Equal(t, catalog.IDFromContent(item.ContentKey()),
			catalog.IDFromContent((&catalog.LineItem{Name: "Cloud Hosting", Vendor: "Hetzner", Category: "Cloud"}).ContentKey()))
	})

	t.Run("preserves explicit ids", func(t *testing.T) {
		item := &catalog.LineItem{Id: 42, Name: "Explicit"}
		added, err := repo.AddLineItems(ctx, item)
		require.NoError(t, err)
		assert.Equal(t, catalog.ID(42), added[0].Id)
	})

	t.Run("rejects invalid items", func(t *testing.T) {
		_, err := repo.AddLineItems(ctx, &catalog.LineItem{Name: ""})
		assert.ErrorIs(t, err, catalog.ErrEmptyName)
	})
}

func TestGetLineItem(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	added, err := repo.AddLineItems(ctx, testItems()...)
	require.NoError(t, err)

	t.Run("round trips a stored item", func(t *testing.T) {
		got, err := repo.GetLineItem(ctx, added[0].Id)
		require.NoError(t, err)
		assert.Equal(t, added[0].Name, got.Name)
		assert.Equal(t, added[0].Description, got.Description)
		assert.Equal(t, added[0].Category, got.Category)
		assert.Equal(t, added[0].Vendor, got.Vendor)
		assert.Equal(t, added[0].AmountCents, got.AmountCents)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetLineItem(ctx, catalog.ID(999999))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("multiple ids skip missing", func(t *testing.T) {
		got, err := repo.GetLineItems(ctx, added[0].Id, catalog.ID(999999), added[1].Id)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestUpdateLineItems(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	added, err := repo.AddLineItems(ctx, testItems()...)
	require.NoError(t, err)

	t.Run("updates fields and timestamp", func(t *testing.T) {
		item := added[0]
		item.AmountCents = 999900
		_, err := repo.UpdateLineItems(ctx, item)
		require.NoError(t, err)

		got, err := repo.GetLineItem(ctx, item.Id)
		require.NoError(t, err)
		assert.Equal(t, int64(999900), got.AmountCents)
		assert.False(t, got.UpdatedAt.Before(got.InsertedAt))
	})

	t.Run("moves the name index on rename", func(t *testing.T) {
		item := added[1]
		oldName := item.Name
		item.Name = "Cloud Hosting EU"
		_, err := repo.UpdateLineItems(ctx, item)
		require.NoError(t, err)

		_, err = repo.FindLineItemByName(ctx, oldName)
		assert.ErrorIs(t, err, store.ErrNotFound)

		got, err := repo.FindLineItemByName(ctx, "Cloud Hosting EU")
		require.NoError(t, err)
		assert.Equal(t, item.Id, got.Id)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := repo.UpdateLineItems(ctx, &catalog.LineItem{Id: 999999, Name: "Ghost"})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestDeleteLineItems(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	added, err := repo.AddLineItems(ctx, testItems()...)
	require.NoError(t, err)

	t.Run("removes record and name index", func(t *testing.T) {
		require.NoError(t, repo.DeleteLineItems(ctx, added[0].Id))

		_, err := repo.GetLineItem(ctx, added[0].Id)
		assert.ErrorIs(t, err, store.ErrNotFound)

		_, err = repo.FindLineItemByName(ctx, added[0].Name)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		err := repo.DeleteLineItems(ctx, catalog.ID(999999))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestFindLineItemByName(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	_, err = repo.AddLineItems(ctx, testItems()...)
	require.NoError(t, err)

	t.Run("exact name lookup", func(t *testing.T) {
		got, err := repo.FindLineItemByName(ctx, "Maintenance Contract")
		require.NoError(t, err)
		assert.Equal(t, "Services", got.Category)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := repo.FindLineItemByName(ctx, "No Such Item")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestGetAllLineItems(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	t.Run("empty database", func(t *testing.T) {
		got, err := repo.GetAllLineItems(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("returns every stored item", func(t *testing.T) {
		_, err := repo.AddLineItems(ctx, testItems()...)
		require.NoError(t, err)

		got, err := repo.GetAllLineItems(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestRankStoredLineItems(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	_, err = repo.AddLineItems(ctx, testItems()...)
	require.NoError(t, err)

	items, err := repo.GetAllLineItems(ctx)
	require.NoError(t, err)

	results := rankit.Search(items, "server", catalog.Fields)
	require.NotEmpty(t, results)
	assert.Equal(t, "GPU Server Purchase", results[0].Item.Name)
	assert.Contains(t, results[0].MatchedFields, "name")
}
