package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyyka/fptpray/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func defaultSet() *model.EquippedSet {
	set := &model.EquippedSet{Key: model.KeyEquippedSet}
	set.Put(model.CategoryFixture, "ban-tho-go")
	set.Put(model.CategoryConsumable, "nhang-thuong")
	return set
}

// =============================================================================
// Ledger Tests
// =============================================================================

func TestLedgerDefaultsToZero(t *testing.T) {
	repo := NewLedgerRepo(openTestDB(t))

	total, err := repo.Read()
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	last, err := repo.LastActivity()
	require.NoError(t, err)
	assert.True(t, last.IsZero())
}

func TestLedgerCredit(t *testing.T) {
	repo := NewLedgerRepo(openTestDB(t))

	total, err := repo.Credit()
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = repo.Credit()
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	read, err := repo.Read()
	require.NoError(t, err)
	assert.Equal(t, 2, read)

	last, err := repo.LastActivity()
	require.NoError(t, err)
	assert.False(t, last.IsZero())
}

func TestLedgerSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(Options{Path: dir})
	require.NoError(t, err)
	repo := NewLedgerRepo(db)

	_, err = repo.Credit()
	require.NoError(t, err)
	total, err := repo.Credit()
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.NoError(t, db.Close())

	// Simulated reload: a fresh connection sees the persisted total.
	db, err = Open(Options{Path: dir})
	require.NoError(t, err)
	defer db.Close()

	total, err = NewLedgerRepo(db).Read()
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

// =============================================================================
// Equip Tests
// =============================================================================

func TestEquipDefaults(t *testing.T) {
	repo := NewEquipRepo(openTestDB(t), defaultSet)

	set, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "ban-tho-go", set.Get(model.CategoryFixture))
	assert.Equal(t, "nhang-thuong", set.Get(model.CategoryConsumable))
}

func TestEquipPersistsFullSet(t *testing.T) {
	db := openTestDB(t)
	repo := NewEquipRepo(db, defaultSet)

	set, err := repo.Get()
	require.NoError(t, err)
	set.Put(model.CategoryConsumable, "nhang-tram")
	require.NoError(t, repo.Set(set))

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "nhang-tram", got.Get(model.CategoryConsumable))
	// The untouched category keeps its entry.
	assert.Equal(t, "ban-tho-go", got.Get(model.CategoryFixture))
}

// =============================================================================
// Profile Tests
// =============================================================================

func TestProfileCreatedOnFirstRead(t *testing.T) {
	repo := NewProfileRepo(openTestDB(t))

	profile, err := repo.Get()
	require.NoError(t, err)
	assert.NotEmpty(t, profile.UserKey)
	assert.Empty(t, profile.Nganh)

	// A second read returns the same profile, not a new key.
	again, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, profile.UserKey, again.UserKey)
}

func TestProfileUpdate(t *testing.T) {
	repo := NewProfileRepo(openTestDB(t))

	profile, err := repo.Get()
	require.NoError(t, err)

	profile.Nganh = "SE"
	require.NoError(t, repo.Update(profile))

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "SE", got.Nganh)
}
