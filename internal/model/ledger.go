package model

import "time"

// Ledger holds the merit total. The total only ever grows: one point per
// confirmed submission, never removed.
type Ledger struct {
	Key   string `json:"key"`
	Total int    `json:"total"`
}

// SetKey sets the database key for this ledger.
func (l *Ledger) SetKey(key string) {
	l.Key = key
}

// GetKey returns the database key for this ledger.
func (l *Ledger) GetKey() string {
	return l.Key
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{Key: KeyLedger}
}

// LedgerActivity records when merit was last credited. Stored under its own
// key, written separately from the total.
type LedgerActivity struct {
	Key  string    `json:"key"`
	Date time.Time `json:"date"`
}

// SetKey sets the database key for this activity record.
func (a *LedgerActivity) SetKey(key string) {
	a.Key = key
}

// GetKey returns the database key for this activity record.
func (a *LedgerActivity) GetKey() string {
	return a.Key
}
