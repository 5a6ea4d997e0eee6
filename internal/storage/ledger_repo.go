package storage

import (
	"time"

	"github.com/vyyka/fptpray/internal/logging"
	"github.com/vyyka/fptpray/internal/model"
)

// LedgerRepo provides operations for the merit ledger singleton.
//
// Credit is the only mutator and always adds exactly 1. Callers must only
// invoke it after a confirmed submission success: a relay dispatch that was
// merely issued without error does not count until the submission pipeline
// reports it as such.
type LedgerRepo struct {
	db *DB
}

// NewLedgerRepo creates a new ledger repository.
func NewLedgerRepo(db *DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

// Read returns the current merit total. A missing key reads as 0.
func (r *LedgerRepo) Read() (int, error) {
	ledger := &model.Ledger{}
	err := r.db.Get(model.KeyLedger, ledger)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return 0, nil
		}
		return 0, err
	}
	return ledger.Total, nil
}

// Credit adds exactly 1 merit and returns the new total. The activity date
// is written under its own key afterwards; a failure there is logged and
// does not undo the credit.
func (r *LedgerRepo) Credit() (int, error) {
	total, err := r.Read()
	if err != nil {
		return 0, err
	}

	ledger := model.NewLedger()
	ledger.Total = total + 1
	if err := r.db.Set(ledger); err != nil {
		return 0, err
	}

	activity := &model.LedgerActivity{Key: model.KeyLedgerActivity, Date: time.Now()}
	if err := r.db.Set(activity); err != nil {
		logging.Logger().Warn("failed to record ledger activity date", "error", err)
	}

	return ledger.Total, nil
}

// LastActivity returns when merit was last credited. The zero time means
// no merit has ever been earned.
func (r *LedgerRepo) LastActivity() (time.Time, error) {
	activity := &model.LedgerActivity{}
	err := r.db.Get(model.KeyLedgerActivity, activity)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return activity.Date, nil
}
