// Package submit orchestrates the submission pipeline: Validator ->
// Dispatcher -> Merit Ledger, with the UI-facing status and feedback.
package submit

import (
	"context"
	"fmt"
	"sync"

	"github.com/vyyka/fptpray/internal/dispatch"
	"github.com/vyyka/fptpray/internal/errors"
	"github.com/vyyka/fptpray/internal/logging"
	"github.com/vyyka/fptpray/internal/model"
	"github.com/vyyka/fptpray/internal/validate"
)

// Status is the submission pipeline state. Exactly one is active at a time.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// msgSuccess embeds the submitted wish and email, like the site did.
const msgSuccess = "Mong ước %s của %s đã được gửi!"

// Ledger is the merit counter mutated on confirmed success.
type Ledger interface {
	Read() (int, error)
	Credit() (int, error)
}

// Machine drives the idle -> sending -> {success, error} transitions.
//
// While sending, a repeated Submit is dropped, not queued, so at most one
// network call is ever in flight and the success transition plus the merit
// credit cannot interleave with another submission. An in-flight submission
// cannot be aborted; callers wait for its resolution.
type Machine struct {
	mu sync.Mutex

	status   Status
	feedback string
	email    string
	wish     string
	nganh    string
	lastWish *model.Prayer

	dispatcher dispatch.Dispatcher
	ledger     Ledger

	// onSuccess fires the one-shot celebratory effect. Optional.
	onSuccess func(total int)
}

// NewMachine creates a machine in the idle state.
func NewMachine(dispatcher dispatch.Dispatcher, ledger Ledger) *Machine {
	return &Machine{
		status:     StatusIdle,
		dispatcher: dispatcher,
		ledger:     ledger,
	}
}

// OnSuccess registers the celebration hook invoked after a confirmed
// success, with the new merit total.
func (m *Machine) OnSuccess(fn func(total int)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onSuccess = fn
}

// SetInput records the form fields for the next Submit.
func (m *Machine) SetInput(email, wish string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.email = email
	m.wish = wish
}

// SetNganh records the category forwarded by the relay strategy.
func (m *Machine) SetNganh(nganh string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nganh = nganh
}

// Status returns the current pipeline state.
func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Feedback returns the current user-visible message.
func (m *Machine) Feedback() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.feedback
}

// Input returns the current form fields.
func (m *Machine) Input() (email, wish string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.email, m.wish
}

// LastWish returns the last successfully submitted prayer, if any.
func (m *Machine) LastWish() *model.Prayer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastWish
}

// Submit runs the pipeline on the current input.
//
// A validation rejection never enters sending, never reaches the network,
// and keeps the inputs for correction; the rejection is returned and also
// surfaced as feedback. Dispatch failure transitions to error, keeping the
// inputs. Success clears the inputs, records the confirmation feedback, and
// credits the merit ledger by exactly 1.
func (m *Machine) Submit(ctx context.Context) error {
	m.mu.Lock()
	if m.status == StatusSending {
		m.mu.Unlock()
		return errors.ErrSubmissionInFlight
	}

	prayer, err := validate.Prayer(m.email, m.wish)
	if err != nil {
		// Rejections resolve locally: status untouched, inputs kept.
		if rej, ok := errors.AsRejection(err); ok {
			m.feedback = rej.Message
		}
		m.mu.Unlock()
		return err
	}
	prayer.Nganh = m.nganh

	m.status = StatusSending
	m.feedback = ""
	m.mu.Unlock()

	outcome := m.dispatcher.Submit(ctx, prayer)

	m.mu.Lock()
	defer m.mu.Unlock()

	if !outcome.OK {
		m.status = StatusError
		m.feedback = outcome.Message
		return fmt.Errorf("submission failed: %s", outcome.Message)
	}

	m.status = StatusSuccess
	m.feedback = fmt.Sprintf(msgSuccess, prayer.Wish, prayer.Email)
	m.lastWish = &prayer
	m.email = ""
	m.wish = ""

	total, err := m.ledger.Credit()
	if err != nil {
		// The sink recorded the prayer; a local credit failure must not
		// turn the submission into an error.
		logging.Logger().Error("failed to credit merit", "error", err)
		return nil
	}

	if m.onSuccess != nil {
		m.onSuccess(total)
	}
	return nil
}
