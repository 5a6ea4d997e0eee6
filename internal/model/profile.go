package model

// Profile holds per-user settings (singleton).
type Profile struct {
	Key     string `json:"key"`
	UserKey string `json:"user_key"`
	// Nganh is the chosen field of study for leaderboard grouping,
	// e.g. "SE" or "AI". Empty until the user picks one.
	Nganh string `json:"nganh,omitempty"`
}

// SetKey sets the database key for this profile.
func (p *Profile) SetKey(key string) {
	p.Key = key
}

// GetKey returns the database key for this profile.
func (p *Profile) GetKey() string {
	return p.Key
}

// NewProfile creates a new profile with the given user key.
func NewProfile(userKey string) *Profile {
	return &Profile{
		Key:     KeyProfile,
		UserKey: userKey,
	}
}
