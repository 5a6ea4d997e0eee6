package storage

import (
	"github.com/google/uuid"

	"github.com/vyyka/fptpray/internal/model"
)

// ProfileRepo provides operations for the profile singleton.
type ProfileRepo struct {
	db *DB
}

// NewProfileRepo creates a new profile repository.
func NewProfileRepo(db *DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Get retrieves the profile, creating it if it doesn't exist.
func (r *ProfileRepo) Get() (*model.Profile, error) {
	profile := &model.Profile{}
	err := r.db.Get(model.KeyProfile, profile)
	if err == nil {
		return profile, nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	userKey, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	profile = model.NewProfile(userKey.String())
	if err := r.db.Set(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Update updates the profile.
func (r *ProfileRepo) Update(profile *model.Profile) error {
	return r.db.Set(profile)
}
