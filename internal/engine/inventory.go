package engine

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"simpleinv/internal/model"
	"simpleinv/internal/storage"
)

const DefaultInitialCapacity = 4

// Container names the storage an item lives in.
type Container string

const (
	ContainerDense  Container = "dense"
	ContainerSparse Container = "sparse"
)

/*
Inventory keeps items in two containers:
  - dense: ordered array for regular stock, scanned linearly.
  - sparse: id-keyed map for rare items (low quantity or flagged at insert).

An id lives in at most one container. Lookups by id and by name check the
sparse map before the dense array.
*/
type Inventory struct {
	dense  *storage.Dense
	sparse *storage.Sparse
	logger zerolog.Logger
}

func NewInventory(initialCapacity int, logger zerolog.Logger) *Inventory {
	return &Inventory{
		dense:  storage.NewDense(initialCapacity),
		sparse: storage.NewSparse(),
		logger: logger,
	}
}

// Insert adds it to the dense array, or to the sparse map when markRare is set.
// The id must not exist in either container.
func (inv *Inventory) Insert(it model.Item, markRare bool) error {
	if inv.contains(it.ID) {
		return eris.Wrapf(ErrDuplicateID, "item %d", it.ID)
	}
	if markRare {
		inv.sparse.Put(it)
		inv.logger.Debug().Int("item_id", it.ID).Str("container", string(ContainerSparse)).Msg("item inserted")
		return nil
	}
	inv.dense.Append(it)
	inv.logger.Debug().Int("item_id", it.ID).Str("container", string(ContainerDense)).
		Int("capacity", inv.dense.Cap()).Msg("item inserted")
	return nil
}

// Delete removes id from whichever container holds it and reports which one.
func (inv *Inventory) Delete(id int) (Container, error) {
	if inv.sparse.Delete(id) {
		inv.logger.Debug().Int("item_id", id).Str("container", string(ContainerSparse)).Msg("item deleted")
		return ContainerSparse, nil
	}
	idx := inv.dense.IndexOf(id)
	if idx == -1 {
		return "", eris.Wrapf(ErrNotFound, "item %d", id)
	}
	inv.dense.RemoveAt(idx)
	inv.logger.Debug().Int("item_id", id).Str("container", string(ContainerDense)).Msg("item deleted")
	return ContainerDense, nil
}

func (inv *Inventory) FindByID(id int) (model.Item, error) {
	if it, ok := inv.sparse.Get(id); ok {
		return it, nil
	}
	if idx := inv.dense.IndexOf(id); idx != -1 {
		return inv.dense.At(idx), nil
	}
	return model.Item{}, eris.Wrapf(ErrNotFound, "item %d", id)
}

func (inv *Inventory) FindByName(name string) (model.Item, error) {
	if it, ok := inv.sparse.FindName(name); ok {
		return it, nil
	}
	if idx := inv.dense.IndexOfName(name); idx != -1 {
		return inv.dense.At(idx), nil
	}
	return model.Item{}, eris.Wrapf(ErrNotFound, "item %q", name)
}

// Update replaces the stored item with the same id, in place.
func (inv *Inventory) Update(it model.Item) error {
	if _, ok := inv.sparse.Get(it.ID); ok {
		inv.sparse.Put(it)
		return nil
	}
	idx := inv.dense.IndexOf(it.ID)
	if idx == -1 {
		return eris.Wrapf(ErrNotFound, "item %d", it.ID)
	}
	inv.dense.Set(idx, it)
	return nil
}

// RelocateLowQuantity moves every dense item with Quantity <= threshold into
// the sparse map. The moved items are returned in their former dense order.
func (inv *Inventory) RelocateLowQuantity(threshold int) []model.Item {
	moved := inv.dense.Extract(func(it model.Item) bool {
		return it.Quantity <= threshold
	})
	for _, it := range moved {
		inv.sparse.Put(it)
	}
	inv.logger.Debug().Int("threshold", threshold).Int("moved", len(moved)).
		Int("remaining", inv.dense.Len()).Msg("low quantity items relocated")
	return moved
}

// Dense returns a copy of the dense array in order.
func (inv *Inventory) Dense() []model.Item { return inv.dense.Snapshot() }

// Sparse returns a copy of the sparse map ordered by id.
func (inv *Inventory) Sparse() []model.Item { return inv.sparse.Snapshot() }

// Len counts items in both containers.
func (inv *Inventory) Len() int { return inv.dense.Len() + inv.sparse.Len() }

// Cap is the dense array capacity.
func (inv *Inventory) Cap() int { return inv.dense.Cap() }

func (inv *Inventory) contains(id int) bool {
	if _, ok := inv.sparse.Get(id); ok {
		return true
	}
	return inv.dense.IndexOf(id) != -1
}
