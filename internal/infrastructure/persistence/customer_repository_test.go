package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/shared"
)

func TestCustomerRepositoryRegister(t *testing.T) {
	ctx := context.Background()
	repo := NewKVCustomerRepository(newTestStore(t))

	t.Run("assigns ids from the persisted counter", func(t *testing.T) {
		first, err := repo.Register(ctx, "Alice", "5551110000")
		require.NoError(t, err)
		assert.Equal(t, int64(1), first.ID)

		second, err := repo.Register(ctx, "Bob", "5552220000")
		require.NoError(t, err)
		assert.Equal(t, int64(2), second.ID)
	})

	t.Run("invalid input does not consume an id", func(t *testing.T) {
		_, err := repo.Register(ctx, "", "5553330000")
		require.Error(t, err)

		third, err := repo.Register(ctx, "Carol", "5553330000")
		require.NoError(t, err)
		assert.Equal(t, int64(3), third.ID)
	})

	t.Run("load returns customers in registration order", func(t *testing.T) {
		customers, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, customers, 3)
		assert.Equal(t, "Alice", customers[0].Name)
		assert.Equal(t, "Carol", customers[2].Name)
	})
}

func TestCustomerRepositoryLatest(t *testing.T) {
	ctx := context.Background()
	repo := NewKVCustomerRepository(newTestStore(t))

	t.Run("fails on an empty store", func(t *testing.T) {
		_, err := repo.Latest(ctx)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("returns the most recent registration", func(t *testing.T) {
		_, err := repo.Register(ctx, "Alice", "5551110000")
		require.NoError(t, err)
		_, err = repo.Register(ctx, "Bob", "5552220000")
		require.NoError(t, err)

		latest, err := repo.Latest(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Bob", latest.Name)
	})
}

func TestCustomerRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewKVCustomerRepository(newTestStore(t))

	registered, err := repo.Register(ctx, "Alice", "5551110000")
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
