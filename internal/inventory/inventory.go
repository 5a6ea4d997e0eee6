package inventory

import (
	"github.com/vyyka/fptpray/internal/errors"
	"github.com/vyyka/fptpray/internal/model"
	"github.com/vyyka/fptpray/internal/storage"
)

// Inventory gates equip actions behind the merit ledger.
type Inventory struct {
	catalog *Catalog
	equips  *storage.EquipRepo
	ledger  *storage.LedgerRepo
}

// New creates an inventory over the given repos.
func New(catalog *Catalog, equips *storage.EquipRepo, ledger *storage.LedgerRepo) *Inventory {
	return &Inventory{catalog: catalog, equips: equips, ledger: ledger}
}

// Catalog returns the static catalog.
func (i *Inventory) Catalog() *Catalog {
	return i.catalog
}

// Equipped returns the persisted equipped set (defaults if never saved).
func (i *Inventory) Equipped() (*model.EquippedSet, error) {
	return i.equips.Get()
}

// Equip equips the item with the given id, overwriting its category's entry
// and persisting the full set. A locked item is rejected with no state
// change.
func (i *Inventory) Equip(id string) (model.Item, error) {
	item, ok := i.catalog.Find(id)
	if !ok {
		return model.Item{}, errors.ErrItemNotFound
	}

	total, err := i.ledger.Read()
	if err != nil {
		return model.Item{}, err
	}
	if !IsUnlocked(item, total) {
		return item, errors.ErrItemLocked
	}

	set, err := i.equips.Get()
	if err != nil {
		return model.Item{}, err
	}
	set.Put(item.Category, item.ID)
	if err := i.equips.Set(set); err != nil {
		return model.Item{}, err
	}
	return item, nil
}
