// Package model defines the domain models for FPT Pray.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// Database key constants. Each key is written independently; there is no
// transaction spanning more than one of them.
const (
	KeyLedger         = "merit:total"
	KeyLedgerActivity = "merit:last_activity"
	KeyEquippedSet    = "equipped"
	KeyProfile        = "profile"
)
