package booking

import (
	"context"
	"sync"
	"time"

	"github.com/hijamacare/site-engine/internal/hijri"
	"github.com/hijamacare/site-engine/pkg/logging"
)

// Outcome is a finite lifecycle state of the booking form.
type Outcome string

const (
	OutcomeIdle       Outcome = "idle"
	OutcomeSubmitting Outcome = "submitting"
	OutcomeSuccess    Outcome = "success"
	OutcomeError      Outcome = "error"
)

// DateInfo is the advisory panel derived from the selected date. It is
// recomputed whenever the date changes and never blocks a booking.
type DateInfo struct {
	Hijri    hijri.Date `json:"hijri"`
	Display  string     `json:"display"`
	IsSunnah bool       `json:"isSunnah"`
}

// stopper is the cancellable one-shot used for the auto-reset.
type stopper interface {
	Stop() bool
}

// Form owns one booking form instance: its field state, the derived date
// advisory, and the idle/submitting/success/error lifecycle. The form is
// reusable indefinitely; no state is terminal.
//
// Field edits are accepted in every state except submitting. Editing while
// a success or error message is displayed snaps the form back to idle.
type Form struct {
	mu        sync.Mutex
	cfg       Config
	submitter Submitter
	logger    *logging.Logger

	now       func() time.Time
	afterFunc func(time.Duration, func()) stopper

	state            Outcome
	request          AppointmentRequest
	dateInfo         *DateInfo
	showInstructions bool

	resetTimer stopper
	gen        uint64
}

// FormOption customizes a Form, mainly for tests.
type FormOption func(*Form)

// WithClock fixes the form's notion of "today".
func WithClock(now func() time.Time) FormOption {
	return func(f *Form) { f.now = now }
}

// WithAfterFunc replaces the reset-timer scheduler.
func WithAfterFunc(fn func(time.Duration, func()) stopper) FormOption {
	return func(f *Form) { f.afterFunc = fn }
}

// WithLogger sets the form's logger.
func WithLogger(logger *logging.Logger) FormOption {
	return func(f *Form) { f.logger = logger }
}

// WithoutAutoReset disables the success/error auto-reset timer. Meant for
// one-shot forms whose outcome is read immediately and then discarded, so
// no timer outlives them.
func WithoutAutoReset() FormOption {
	return func(f *Form) {
		f.afterFunc = func(time.Duration, func()) stopper { return noopTimer{} }
	}
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return false }

// NewForm creates an idle form with configuration-derived defaults applied.
func NewForm(cfg Config, submitter Submitter, opts ...FormOption) *Form {
	f := &Form{
		cfg:       cfg.WithDefaults(),
		submitter: submitter,
		logger:    logging.Default(),
		now:       time.Now,
		state:     OutcomeIdle,
	}
	f.afterFunc = func(d time.Duration, fn func()) stopper {
		return time.AfterFunc(d, fn)
	}
	for _, opt := range opts {
		opt(f)
	}
	f.request = AppointmentRequest{Service: f.cfg.DefaultService()}
	return f
}

// State returns the current lifecycle state.
func (f *Form) State() Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Request returns a copy of the current field state.
func (f *Form) Request() AppointmentRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.request
}

// DateInfo returns the advisory panel for the selected date, or nil when
// no date is selected.
func (f *Form) DateInfo() *DateInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dateInfo == nil {
		return nil
	}
	info := *f.dateInfo
	return &info
}

// Window returns the selectable date range relative to now.
func (f *Form) Window() Window {
	return WindowFrom(f.now())
}

// Config returns the form's configuration.
func (f *Form) Config() Config {
	return f.cfg
}

// SetName sets the name field.
func (f *Form) SetName(v string) error { return f.edit(func() { f.request.Name = v }) }

// SetEmail sets the email field.
func (f *Form) SetEmail(v string) error { return f.edit(func() { f.request.Email = v }) }

// SetPhone sets the phone field.
func (f *Form) SetPhone(v string) error { return f.edit(func() { f.request.Phone = v }) }

// SetService sets the selected service.
func (f *Form) SetService(v string) error { return f.edit(func() { f.request.Service = v }) }

// SetTime sets the selected time slot.
func (f *Form) SetTime(v string) error { return f.edit(func() { f.request.Time = v }) }

// SetNotes sets the additional notes field.
func (f *Form) SetNotes(v string) error { return f.edit(func() { f.request.AdditionalNotes = v }) }

// SetDate selects a booking date. Dates outside the rolling window are
// rejected at this boundary; an accepted date synchronously recomputes the
// Hijri advisory without ever altering the date itself.
func (f *Form) SetDate(date string) error {
	window := WindowFrom(f.now())
	return f.edit(func() {
		if date == "" {
			f.request.Date = ""
			f.dateInfo = nil
			return
		}
		if !window.Contains(date) {
			return
		}
		f.request.Date = date
		f.dateInfo = dateInfoFor(date)
	}, func() error {
		if date != "" && !window.Contains(date) {
			return ErrDateOutOfWindow
		}
		return nil
	})
}

// ToggleInstructions flips the collapsible prep-instructions panel and
// returns its new visibility. Display state, allowed in any lifecycle state.
func (f *Form) ToggleInstructions() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showInstructions = !f.showInstructions
	return f.showInstructions
}

// Submit freezes the current request and runs it through the pipeline. It
// returns the resulting state; a second submit while one is running is
// rejected with ErrSubmitInProgress.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	if f.state == OutcomeSubmitting {
		f.mu.Unlock()
		return OutcomeSubmitting, ErrSubmitInProgress
	}
	if err := f.request.Validate(); err != nil {
		f.mu.Unlock()
		return f.State(), err
	}
	f.stopResetLocked()
	f.state = OutcomeSubmitting
	frozen := f.request
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, frozen)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.logger.Error("booking submission failed", "cause", FailureCause(err), "error", err)
		f.state = OutcomeError
		f.armResetLocked()
		return OutcomeError, err
	}

	f.state = OutcomeSuccess
	f.request = AppointmentRequest{Service: f.cfg.DefaultService()}
	f.dateInfo = nil
	f.armResetLocked()
	return OutcomeSuccess, nil
}

// edit runs a field mutation under the submitting guard. Edits during the
// success/error display snap the form back to idle, superseding any
// pending auto-reset.
func (f *Form) edit(apply func(), checks ...func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == OutcomeSubmitting {
		return ErrEditWhileSubmitting
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	if f.state == OutcomeSuccess || f.state == OutcomeError {
		f.stopResetLocked()
		f.state = OutcomeIdle
	}
	apply()
	return nil
}

// armResetLocked schedules the one-shot auto-reset back to idle. A newer
// transition supersedes the timer via the generation counter.
func (f *Form) armResetLocked() {
	f.gen++
	gen := f.gen
	f.resetTimer = f.afterFunc(f.cfg.ResetDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.gen != gen {
			return
		}
		if f.state == OutcomeSuccess || f.state == OutcomeError {
			f.state = OutcomeIdle
		}
	})
}

func (f *Form) stopResetLocked() {
	f.gen++
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

// dateInfoFor computes the advisory panel for a selected date. Conversion
// failures yield no panel rather than an error: the advisory is read-only
// decoration.
func dateInfoFor(date string) *DateInfo {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	hd, err := hijri.FromTime(t)
	if err != nil {
		return nil
	}
	return &DateInfo{
		Hijri:    hd,
		Display:  hd.String(),
		IsSunnah: hijri.IsSunnahDay(t),
	}
}
