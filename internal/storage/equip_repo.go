package storage

import (
	"github.com/vyyka/fptpray/internal/model"
)

// EquipRepo provides operations for the equipped set singleton.
type EquipRepo struct {
	db       *DB
	defaults func() *model.EquippedSet
}

// NewEquipRepo creates a new equip repository. The defaults function
// produces the set used before anything was ever equipped; it must reference
// zero-threshold items only so the set is valid at zero merit.
func NewEquipRepo(db *DB, defaults func() *model.EquippedSet) *EquipRepo {
	return &EquipRepo{db: db, defaults: defaults}
}

// Get retrieves the equipped set, falling back to defaults when nothing has
// been persisted yet.
func (r *EquipRepo) Get() (*model.EquippedSet, error) {
	set := &model.EquippedSet{}
	err := r.db.Get(model.KeyEquippedSet, set)
	if err == nil {
		return set, nil
	}
	if !IsErrKeyNotFound(err) {
		return nil, err
	}
	return r.defaults(), nil
}

// Set persists the full equipped set.
func (r *EquipRepo) Set(set *model.EquippedSet) error {
	set.Key = model.KeyEquippedSet
	return r.db.Set(set)
}
