package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleinv/internal/model"
)

func TestDenseGrowsByDoubling(t *testing.T) {
	d := NewDense(2)
	require.Equal(t, 2, d.Cap())

	for i := 1; i <= 5; i++ {
		d.Append(model.NewItem(i, "x", i, 1))
	}

	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 8, d.Cap())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i+1, d.At(i).ID)
	}
}

func TestDenseZeroCapacityIsClamped(t *testing.T) {
	d := NewDense(0)
	assert.Equal(t, 1, d.Cap())
	d.Append(model.NewItem(1, "a", 1, 1))
	d.Append(model.NewItem(2, "b", 1, 1))
	assert.Equal(t, 2, d.Cap())
}

func TestDenseRemoveAtShiftsDown(t *testing.T) {
	d := NewDense(4)
	for i := 1; i <= 4; i++ {
		d.Append(model.NewItem(i, "x", 0, 0))
	}

	removed := d.RemoveAt(1)

	assert.Equal(t, 2, removed.ID)
	assert.Equal(t, []int{1, 3, 4}, ids(d.Snapshot()))
	assert.Equal(t, -1, d.IndexOf(2))
	assert.Equal(t, 1, d.IndexOf(3))
}

func TestDenseExtractIsStable(t *testing.T) {
	d := NewDense(1)
	for i, qty := range []int{20, 5, 50, 2} {
		d.Append(model.NewItem(i+1, "x", qty, 0))
	}

	moved := d.Extract(func(it model.Item) bool { return it.Quantity <= 5 })

	assert.Equal(t, []int{2, 4}, ids(moved))
	assert.Equal(t, []int{1, 3}, ids(d.Snapshot()))
	assert.Equal(t, 2, d.Len())
}

func TestDenseIndexOfName(t *testing.T) {
	d := NewDense(2)
	d.Append(model.NewItem(1, "Rice", 1, 1))
	d.Append(model.NewItem(2, "Salt", 1, 1))

	assert.Equal(t, 1, d.IndexOfName("Salt"))
	assert.Equal(t, -1, d.IndexOfName("Tea"))
}

func TestSparseSnapshotOrderedByID(t *testing.T) {
	s := NewSparse()
	s.Put(model.NewItem(9, "c", 1, 1))
	s.Put(model.NewItem(3, "a", 1, 1))
	s.Put(model.NewItem(5, "b", 1, 1))

	assert.Equal(t, []int{3, 5, 9}, ids(s.Snapshot()))

	it, ok := s.FindName("b")
	require.True(t, ok)
	assert.Equal(t, 5, it.ID)

	assert.True(t, s.Delete(5))
	assert.False(t, s.Delete(5))
	_, ok = s.Get(5)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func ids(items []model.Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
