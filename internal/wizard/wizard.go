// Package wizard drives one visa-application editing session: a step index
// over the nine form sections, the accumulating record, and a debounced
// autosave that pushes the full snapshot through the persistence gateway.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/visaquest/visaquest-go/internal/domain/form"
	"github.com/visaquest/visaquest-go/internal/domain/form/validate"
	"gorm.io/datatypes"
)

const DefaultDebounce = 2 * time.Second

var (
	ErrInvalidStep     = errors.New("step out of range")
	ErrAtFirstStep     = errors.New("already at the first step")
	ErrAtLastStep      = errors.New("already at the last step")
	ErrNotOnReviewStep = errors.New("submit is only available from the review step")
	ErrNotCertified    = errors.New("certification checkbox must be checked before submitting")
	ErrNeverSaved      = errors.New("application has not been persisted yet")
)

type Option func(*Wizard)

func WithDebounce(d time.Duration) Option {
	return func(w *Wizard) { w.delay = d }
}

func WithNotifier(n Notifier) Option {
	return func(w *Wizard) { w.notify = n }
}

// Wizard owns the shared record for one editing session. All mutations go
// through it; everything it hands out is a copy. Navigation is permissive:
// moving between steps never requires the current step to validate, matching
// the progress-indicator clicks in the form UI.
type Wizard struct {
	mu        sync.Mutex
	step      int
	app       form.Application
	id        uuid.UUID
	certified bool
	timer     *time.Timer

	gw     Gateway
	notify Notifier
	delay  time.Duration
}

func New(gw Gateway, opts ...Option) *Wizard {
	w := &Wizard{
		app:    form.NewDraft(),
		gw:     gw,
		notify: nopNotifier{},
		delay:  DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Load resumes editing a previously persisted application.
func (w *Wizard) Load(ctx context.Context, id uuid.UUID) error {
	app, err := w.gw.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load application: %w", err)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.app = app
	w.id = id
	return nil
}

func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) StepTitle() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return validate.Section(w.step).Title()
}

// Steps returns the ordered step titles for the progress indicator.
func (w *Wizard) Steps() []string {
	return validate.Titles()
}

func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step >= validate.SectionCount-1 {
		return ErrAtLastStep
	}
	w.step++
	return nil
}

func (w *Wizard) Previous() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step <= 0 {
		return ErrAtFirstStep
	}
	w.step--
	return nil
}

func (w *Wizard) GoTo(step int) error {
	if step < 0 || step >= validate.SectionCount {
		return ErrInvalidStep
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = step
	return nil
}

// ValidateStep runs the current step's section rules against the record.
func (w *Wizard) ValidateStep() validate.FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return validate.Section(w.step).Validate(w.app)
}

// Apply shallow-merges the given slice into the shared record and schedules
// an autosave. Present fields replace stored values wholesale; nested blocks
// are never deep-merged.
func (w *Wizard) Apply(input form.ApplicationInput) {
	w.mu.Lock()
	defer w.mu.Unlock()
	input.ApplyTo(&w.app)
	w.scheduleSave()
}

// SetPreviousTravel flips the previous-travel flag and keeps the visit list
// consistent with it: clearing the flag empties the list, setting it over an
// empty list seeds one blank entry for the form to fill in.
func (w *Wizard) SetPreviousTravel(flag bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.app.PreviousUSTravel = flag
	if !flag {
		w.app.PreviousUSTravelDetails = datatypes.JSONSlice[form.Visit]{}
	} else if len(w.app.PreviousUSTravelDetails) == 0 {
		w.app.PreviousUSTravelDetails = datatypes.JSONSlice[form.Visit]{{}}
	}
	w.scheduleSave()
}

// Snapshot returns a copy of the accumulated record.
func (w *Wizard) Snapshot() form.Application {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.app
}

// ID returns the persisted identifier, or uuid.Nil before the first
// successful autosave.
func (w *Wizard) ID() uuid.UUID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.id
}

// Certify records the review step's accuracy checkbox. It is not a record
// mutation and does not trigger an autosave.
func (w *Wizard) Certify(ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.certified = ok
}

// Flush cancels any pending debounce timer and performs the save now.
func (w *Wizard) Flush(ctx context.Context) {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	w.save(ctx)
}

// Stop cancels a pending autosave without firing it. An already in-flight
// write cannot be cancelled.
func (w *Wizard) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

// Submit is the terminal transition: review step only, certification checked,
// at least one successful autosave behind us. It writes the full snapshot
// with status submitted synchronously. On failure the local record stays in
// draft and the caller may retry.
func (w *Wizard) Submit(ctx context.Context) (form.Application, error) {
	w.mu.Lock()
	if w.step != int(validate.Review) {
		w.mu.Unlock()
		return form.Application{}, ErrNotOnReviewStep
	}
	if !w.certified {
		w.mu.Unlock()
		return form.Application{}, ErrNotCertified
	}
	if w.id == uuid.Nil {
		w.mu.Unlock()
		return form.Application{}, ErrNeverSaved
	}
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	id := w.id
	snapshot := w.app
	snapshot.FormStatus = form.StatusSubmitted
	w.mu.Unlock()

	updated, err := w.gw.Update(ctx, id, snapshot)
	if err != nil {
		w.notify.SubmitFailed(err)
		return form.Application{}, fmt.Errorf("submit application: %w", err)
	}

	w.mu.Lock()
	w.app.FormStatus = form.StatusSubmitted
	w.mu.Unlock()
	w.notify.Submitted(id)
	return updated, nil
}

// scheduleSave arms the debounce timer; a newer mutation arriving within the
// window stops the pending timer and starts a fresh one, so only the last
// trigger fires. Caller holds w.mu.
func (w *Wizard) scheduleSave() {
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() {
		w.save(context.Background())
	})
}

// save pushes the full current snapshot: a create on the first flush, an
// update by identifier afterwards. The gateway call runs outside the lock,
// so a slow write never blocks local editing; it also means a second timer
// can overlap an in-flight write, with the last scheduled write winning.
func (w *Wizard) save(ctx context.Context) {
	w.mu.Lock()
	id := w.id
	snapshot := w.app
	snapshot.FormStatus = form.StatusDraft
	w.mu.Unlock()

	if id == uuid.Nil {
		created, err := w.gw.Create(ctx, snapshot)
		if err != nil {
			w.notify.SaveFailed(err)
			return
		}
		w.mu.Lock()
		if w.id == uuid.Nil {
			w.id = created.ID
		}
		id = w.id
		w.mu.Unlock()
		w.notify.Saved(id)
		return
	}

	if _, err := w.gw.Update(ctx, id, snapshot); err != nil {
		w.notify.SaveFailed(err)
		return
	}
	w.notify.Saved(id)
}
