package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"simpleinv/internal/config"
	"simpleinv/internal/engine"
	"simpleinv/internal/model"
	"simpleinv/internal/report"
)

type seedItem struct {
	item model.Item
	rare bool
}

var grocerySeed = []seedItem{
	{model.NewItem(101, "Rice_5kg", 20, 40.50), false},
	{model.NewItem(102, "Sugar_1kg", 5, 30.00), false},
	{model.NewItem(103, "Salt_1kg", 50, 10.25), false},
	{model.NewItem(104, "Wheat_10kg", 2, 400.00), true},
	{model.NewItem(105, "Oil_1L", 8, 120.0), false},
	{model.NewItem(106, "Tea_250g", 1, 220.0), true},
}

// Inventory wraps engine.Inventory and writes a status line for every call.
type Inventory struct {
	inv *engine.Inventory
	w   io.Writer
}

func NewInventory(w io.Writer, capacity int, logger zerolog.Logger) *Inventory {
	return &Inventory{inv: engine.NewInventory(capacity, logger), w: w}
}

func (d *Inventory) Store() *engine.Inventory { return d.inv }

func (d *Inventory) Add(it model.Item, rare bool) bool {
	err := d.inv.Insert(it, rare)
	switch {
	case errors.Is(err, engine.ErrDuplicateID):
		d.printf("[insertItem] Failed: ItemID %d already exists.\n", it.ID)
		return false
	case err != nil:
		d.printf("[insertItem] Failed: %v\n", err)
		return false
	case rare:
		d.printf("[insertItem] ItemID %d stored in sparse map (rare item).\n", it.ID)
	default:
		d.printf("[insertItem] Inserted ItemID %d.\n", it.ID)
	}
	return true
}

func (d *Inventory) Remove(id int) bool {
	where, err := d.inv.Delete(id)
	if err != nil {
		d.printf("[deleteItem] ItemID %d not found.\n", id)
		return false
	}
	if where == engine.ContainerSparse {
		d.printf("[deleteItem] Removed ItemID %d from sparse storage.\n", id)
	} else {
		d.printf("[deleteItem] Deleted ItemID %d.\n", id)
	}
	return true
}

func (d *Inventory) FindByID(id int) (model.Item, bool) {
	it, err := d.inv.FindByID(id)
	if err != nil {
		d.printf("\nItemID %d not found.\n", id)
		return model.Item{}, false
	}
	d.printf("\nFound by ID %d: %s Qty:%d Price:%g\n", id, it.Name, it.Quantity, it.Price)
	return it, true
}

func (d *Inventory) FindByName(name string) (model.Item, bool) {
	it, err := d.inv.FindByName(name)
	if err != nil {
		d.printf("Item %s not found.\n", name)
		return model.Item{}, false
	}
	d.printf("Found by Name %s: ID %d\n", name, it.ID)
	return it, true
}

func (d *Inventory) Relocate(threshold int) []model.Item {
	d.printf("\n[optimizeSparseStorage] Moving items with Qty <= %d.\n", threshold)
	moved := d.inv.RelocateLowQuantity(threshold)
	for _, it := range moved {
		d.printf("  -> Moved ItemID %d (%s)\n", it.ID, it.Name)
	}
	return moved
}

func (d *Inventory) Print() { report.PrintInventory(d.w, d.inv) }

func (d *Inventory) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.w, format, args...)
}

// RunInventory plays the grocery script against a fresh inventory.
func RunInventory(w io.Writer, cfg config.Config, logger zerolog.Logger) error {
	logger = logger.With().Str("demo", "inventory").Logger()
	logger.Info().Int("capacity", cfg.InitialCapacity).Int("threshold", cfg.RareThreshold).
		Int("rows", cfg.GridRows).Int("cols", cfg.GridCols).Msg("starting demo")

	report.Heading(w, "===== Grocery Inventory System =====")
	d := NewInventory(w, cfg.InitialCapacity, logger)

	for _, s := range grocerySeed {
		d.Add(s.item, s.rare)
	}
	d.Print()

	d.FindByID(103)
	d.FindByName("Sugar_1kg")

	d.Remove(102)
	d.Print()

	d.Relocate(cfg.RareThreshold)
	d.Print()

	if _, err := report.GridReport(w, d.Store(), cfg.GridRows, cfg.GridCols); err != nil {
		return err
	}
	report.PrintComplexities(w)

	logger.Info().Int("items", d.Store().Len()).Msg("demo finished")
	return nil
}
