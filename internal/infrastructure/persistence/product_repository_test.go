package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

func newTestProductRepository(t *testing.T, seed bool) *KVProductRepository {
	t.Helper()
	return NewKVProductRepository(newTestStore(t), seed, nil)
}

func TestProductRepositoryLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the default catalog on first load", func(t *testing.T) {
		repo := newTestProductRepository(t, true)

		products, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "T-shirt", products[0].Name)
		assert.Equal(t, "Jeans", products[1].Name)

		// The seed is persisted, not recomputed
		again, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, products, again)
	})

	t.Run("returns empty catalog when seeding is disabled", func(t *testing.T) {
		repo := newTestProductRepository(t, false)

		products, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("an emptied catalog stays empty", func(t *testing.T) {
		repo := newTestProductRepository(t, true)

		require.NoError(t, repo.Save(ctx, []catalog.Product{}))
		products, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestProductRepositoryAppendUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestProductRepository(t, true)

	product, err := catalog.NewProduct("Hoodie", "", decimal.NewFromInt(35), "Men", "Hoodie", "L", 5, "")
	require.NoError(t, err)

	require.NoError(t, repo.Append(ctx, product))
	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hoodie", found.Name)

	product.Name = "Zip Hoodie"
	require.NoError(t, repo.Update(ctx, product))
	found, err = repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zip Hoodie", found.Name)

	t.Run("updating an unknown product fails", func(t *testing.T) {
		ghost := *product
		ghost.ID = 999999
		assert.ErrorIs(t, repo.Update(ctx, &ghost), shared.ErrNotFound)
	})
}

func TestProductRepositoryAdjustStock(t *testing.T) {
	ctx := context.Background()
	repo := newTestProductRepository(t, true)

	t.Run("applies the delta", func(t *testing.T) {
		updated, err := repo.AdjustStock(ctx, 1, -4)
		require.NoError(t, err)
		assert.Equal(t, 6, updated.Stock)
	})

	t.Run("clamps at zero", func(t *testing.T) {
		updated, err := repo.AdjustStock(ctx, 1, -100)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Stock)
	})

	t.Run("unknown product fails", func(t *testing.T) {
		_, err := repo.AdjustStock(ctx, 999999, 1)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductRepositoryReserveRelease(t *testing.T) {
	ctx := context.Background()
	repo := newTestProductRepository(t, true)

	t.Run("reserve decrements stock", func(t *testing.T) {
		updated, err := repo.Reserve(ctx, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, 6, updated.Stock)
	})

	t.Run("reserve fails beyond available stock and keeps state", func(t *testing.T) {
		_, err := repo.Reserve(ctx, 1, 7)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)

		found, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 6, found.Stock)
	})

	t.Run("release restores stock", func(t *testing.T) {
		updated, err := repo.Release(ctx, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, 10, updated.Stock)
	})
}

func TestProductRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestProductRepository(t, true)

	archived, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "T-shirt", archived.Name)
	assert.NotEmpty(t, archived.DeletedDate)
	assert.NotEmpty(t, archived.DeletedTime)

	t.Run("product leaves the catalog", func(t *testing.T) {
		products, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Jeans", products[0].Name)
	})

	t.Run("product enters the archive and the counter advances", func(t *testing.T) {
		deleted, err := repo.Deleted(ctx)
		require.NoError(t, err)
		require.Len(t, deleted, 1)
		assert.Equal(t, int64(1), deleted[0].ID)

		count, err := repo.DeletedCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("deleting an unknown product fails and changes nothing", func(t *testing.T) {
		_, err := repo.Delete(ctx, 999999)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		count, err := repo.DeletedCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestProductRepositoryPurgeDeleted(t *testing.T) {
	ctx := context.Background()
	repo := newTestProductRepository(t, true)

	_, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	_, err = repo.Delete(ctx, 2)
	require.NoError(t, err)

	removed, err := repo.PurgeDeleted(ctx, []int64{1, 999})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	deleted, err := repo.Deleted(ctx)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, int64(2), deleted[0].ID)

	// Purging ids that are all unknown is a no-op
	removed, err = repo.PurgeDeleted(ctx, []int64{42})
	require.NoError(t, err)
	assert.Zero(t, removed)
}
