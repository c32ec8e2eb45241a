package storage

import "simpleinv/internal/model"

// Note: Dense and Sparse are plain containers owned by a single caller.
// They do no locking and keep no cross-container invariants; the engine
// is in charge of keeping an id in at most one of them.

const minimalDenseCapacity = 1

// Dense is an ordered, growable array of items. Capacity doubles when an
// append finds the backing array full.
type Dense struct {
	items []model.Item
	size  int
}

func NewDense(capacity int) *Dense {
	if capacity < minimalDenseCapacity {
		capacity = minimalDenseCapacity
	}
	return &Dense{items: make([]model.Item, capacity)}
}

func (d *Dense) Len() int { return d.size }

func (d *Dense) Cap() int { return len(d.items) }

// At returns the item at position i. Caller guarantees 0 <= i < Len().
func (d *Dense) At(i int) model.Item { return d.items[i] }

// Set replaces the item at position i in place.
func (d *Dense) Set(i int, it model.Item) { d.items[i] = it }

func (d *Dense) Append(it model.Item) {
	d.ensureCapacity()
	d.items[d.size] = it
	d.size++
}

// IndexOf returns the position of id, or -1.
func (d *Dense) IndexOf(id int) int {
	for i := 0; i < d.size; i++ {
		if d.items[i].ID == id {
			return i
		}
	}
	return -1
}

// IndexOfName returns the position of the first item called name, or -1.
func (d *Dense) IndexOfName(name string) int {
	for i := 0; i < d.size; i++ {
		if d.items[i].Name == name {
			return i
		}
	}
	return -1
}

// RemoveAt drops position i and shifts every later item down by one.
func (d *Dense) RemoveAt(i int) model.Item {
	removed := d.items[i]
	copy(d.items[i:d.size-1], d.items[i+1:d.size])
	d.size--
	d.items[d.size] = model.Item{}
	return removed
}

// Extract removes every item matching pred in a single pass and compacts the
// rest in place. Items that stay keep their relative order. The removed items
// are returned in the order they were found.
func (d *Dense) Extract(pred func(model.Item) bool) []model.Item {
	var removed []model.Item
	write := 0
	for read := 0; read < d.size; read++ {
		if pred(d.items[read]) {
			removed = append(removed, d.items[read])
			continue
		}
		d.items[write] = d.items[read]
		write++
	}
	for i := write; i < d.size; i++ {
		d.items[i] = model.Item{}
	}
	d.size = write
	return removed
}

// Snapshot copies the live items in order.
func (d *Dense) Snapshot() []model.Item {
	out := make([]model.Item, d.size)
	copy(out, d.items[:d.size])
	return out
}

func (d *Dense) ensureCapacity() {
	if d.size < len(d.items) {
		return
	}
	newCap := len(d.items) * 2
	if newCap < minimalDenseCapacity {
		newCap = minimalDenseCapacity
	}
	grown := make([]model.Item, newCap)
	copy(grown, d.items[:d.size])
	d.items = grown
}
