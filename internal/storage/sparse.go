package storage

import (
	"sort"

	"simpleinv/internal/model"
)

// Sparse keeps rare items keyed by id.
type Sparse struct {
	items map[int]model.Item
}

func NewSparse() *Sparse {
	return &Sparse{items: make(map[int]model.Item)}
}

func (s *Sparse) Len() int { return len(s.items) }

func (s *Sparse) Get(id int) (model.Item, bool) {
	it, ok := s.items[id]
	return it, ok
}

func (s *Sparse) Put(it model.Item) { s.items[it.ID] = it }

// Delete reports whether id was present.
func (s *Sparse) Delete(id int) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// FindName returns the lowest-id item called name.
func (s *Sparse) FindName(name string) (model.Item, bool) {
	for _, it := range s.Snapshot() {
		if it.Name == name {
			return it, true
		}
	}
	return model.Item{}, false
}

// Snapshot returns the items ordered by ascending id so listings are stable.
func (s *Sparse) Snapshot() []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
