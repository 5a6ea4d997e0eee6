// Package inventory holds the static altar item catalog and the equip flow
// gated by the merit ledger.
package inventory

import (
	"github.com/vyyka/fptpray/internal/model"
)

// defaultItems is the full catalog in display order. Definitions are static
// and immutable at runtime; each category starts with a zero-threshold item
// so the default equipped set is valid before any merit is earned.
var defaultItems = []model.Item{
	{ID: "ban-tho-go", DisplayName: "Bàn thờ gỗ mộc", Category: model.CategoryFixture, UnlockThreshold: 0},
	{ID: "ban-tho-son-son", DisplayName: "Bàn thờ sơn son thếp vàng", Category: model.CategoryFixture, UnlockThreshold: 5},
	{ID: "ban-tho-da-rong", DisplayName: "Bàn thờ đá khắc rồng", Category: model.CategoryFixture, UnlockThreshold: 20},
	{ID: "nhang-thuong", DisplayName: "Nhang thường", Category: model.CategoryConsumable, UnlockThreshold: 0},
	{ID: "nhang-tram", DisplayName: "Nhang trầm hương", Category: model.CategoryConsumable, UnlockThreshold: 3},
	{ID: "bo-nhang-dai", DisplayName: "Bó nhang đại", Category: model.CategoryConsumable, UnlockThreshold: 10},
}

// Catalog is the static item catalog.
type Catalog struct {
	items []model.Item
}

// NewCatalog creates the default catalog.
func NewCatalog() *Catalog {
	items := make([]model.Item, len(defaultItems))
	copy(items, defaultItems)
	return &Catalog{items: items}
}

// Items returns all items in insertion order.
func (c *Catalog) Items() []model.Item {
	items := make([]model.Item, len(c.items))
	copy(items, c.items)
	return items
}

// ListItems returns the items of one category in insertion order.
func (c *Catalog) ListItems(category string) []model.Item {
	var items []model.Item
	for _, item := range c.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

// Find returns the item with the given id.
func (c *Catalog) Find(id string) (model.Item, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.Item{}, false
}

// IsUnlocked reports whether an item is available at the given merit total.
func IsUnlocked(item model.Item, total int) bool {
	return total >= item.UnlockThreshold
}

// DefaultEquippedSet references the zero-threshold item of each category.
func (c *Catalog) DefaultEquippedSet() *model.EquippedSet {
	set := &model.EquippedSet{Key: model.KeyEquippedSet}
	for _, category := range model.Categories() {
		for _, item := range c.ListItems(category) {
			if item.UnlockThreshold == 0 {
				set.Put(category, item.ID)
				break
			}
		}
	}
	return set
}
