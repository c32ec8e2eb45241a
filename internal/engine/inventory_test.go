package engine

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleinv/internal/model"
)

func newTestInventory(t *testing.T) *Inventory {
	t.Helper()
	return NewInventory(DefaultInitialCapacity, zerolog.Nop())
}

func TestInsertThenFindByID(t *testing.T) {
	inv := newTestInventory(t)

	require.NoError(t, inv.Insert(model.NewItem(1, "A", 20, 40.5), false))

	err := inv.Insert(model.NewItem(1, "B", 1, 1.0), false)
	assert.True(t, errors.Is(err, ErrDuplicateID), "got %v", err)

	got, err := inv.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, model.NewItem(1, "A", 20, 40.5), got)
	assert.Equal(t, 1, inv.Len())
}

func TestInsertRejectsIDHeldBySparse(t *testing.T) {
	inv := newTestInventory(t)

	require.NoError(t, inv.Insert(model.NewItem(7, "Tea", 1, 220), true))

	err := inv.Insert(model.NewItem(7, "Tea", 9, 220), false)
	assert.ErrorIs(t, err, ErrDuplicateID)
	err = inv.Insert(model.NewItem(7, "Tea", 9, 220), true)
	assert.ErrorIs(t, err, ErrDuplicateID)

	assert.Empty(t, inv.Dense())
	assert.Len(t, inv.Sparse(), 1)
}

func TestInsertGrowsDenseCapacity(t *testing.T) {
	inv := NewInventory(2, zerolog.Nop())
	for i := 1; i <= 3; i++ {
		require.NoError(t, inv.Insert(model.NewItem(i, "x", 10, 1), false))
	}
	assert.Equal(t, 4, inv.Cap())

	require.NoError(t, inv.Insert(model.NewItem(10, "rare", 1, 1), true))
	assert.Equal(t, 4, inv.Cap(), "rare inserts do not touch the dense array")
}

func TestDeleteFromEitherContainer(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.Insert(model.NewItem(1, "A", 10, 1), false))
	require.NoError(t, inv.Insert(model.NewItem(2, "B", 10, 1), false))
	require.NoError(t, inv.Insert(model.NewItem(3, "C", 10, 1), false))
	require.NoError(t, inv.Insert(model.NewItem(4, "D", 1, 1), true))

	where, err := inv.Delete(4)
	require.NoError(t, err)
	assert.Equal(t, ContainerSparse, where)

	where, err = inv.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, ContainerDense, where)

	_, err = inv.FindByID(4)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = inv.FindByID(2)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []int{1, 3}, itemIDs(inv.Dense()))

	_, err = inv.Delete(2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByNameChecksSparseFirst(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.Insert(model.NewItem(1, "Salt", 50, 10.25), false))
	require.NoError(t, inv.Insert(model.NewItem(2, "Salt", 1, 12), true))

	got, err := inv.FindByName("Salt")
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)

	_, err = inv.FindByName("Pepper")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRelocateLowQuantity(t *testing.T) {
	inv := newTestInventory(t)
	for i, qty := range []int{20, 5, 50, 2} {
		require.NoError(t, inv.Insert(model.NewItem(i+1, "x", qty, 1), false))
	}

	moved := inv.RelocateLowQuantity(5)

	assert.Equal(t, []int{2, 4}, itemIDs(moved))
	assert.Equal(t, []int{1, 3}, itemIDs(inv.Dense()))
	assert.Equal(t, []int{2, 4}, itemIDs(inv.Sparse()))
	for _, it := range inv.Dense() {
		assert.Greater(t, it.Quantity, 5)
	}

	got, err := inv.FindByID(4)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
}

func TestRelocateLowQuantityNothingToMove(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.Insert(model.NewItem(1, "A", 20, 1), false))

	assert.Empty(t, inv.RelocateLowQuantity(5))
	assert.Equal(t, []int{1}, itemIDs(inv.Dense()))
	assert.Empty(t, inv.Sparse())
}

func TestUpdateReplacesInPlace(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.Insert(model.NewItem(1, "A", 20, 1), false))
	require.NoError(t, inv.Insert(model.NewItem(2, "B", 20, 1), false))
	require.NoError(t, inv.Insert(model.NewItem(3, "C", 1, 1), true))

	require.NoError(t, inv.Update(model.NewItem(1, "A", 3, 2.5)))
	require.NoError(t, inv.Update(model.NewItem(3, "C", 0, 9)))

	assert.Equal(t, model.NewItem(1, "A", 3, 2.5), inv.Dense()[0])
	assert.Equal(t, []int{1, 2}, itemIDs(inv.Dense()))
	got, err := inv.FindByID(3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got.Price)

	assert.ErrorIs(t, inv.Update(model.NewItem(42, "Z", 1, 1)), ErrNotFound)
}

func itemIDs(items []model.Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
