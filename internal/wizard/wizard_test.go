package wizard_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/visaquest/visaquest-go/internal/domain/form"
	"github.com/visaquest/visaquest-go/internal/wizard"
	"github.com/visaquest/visaquest-go/internal/wizard/mock"
)

type recordingNotifier struct {
	mu         sync.Mutex
	saved      []uuid.UUID
	saveErrs   []error
	submitted  []uuid.UUID
	submitErrs []error
}

func (n *recordingNotifier) Saved(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.saved = append(n.saved, id)
}

func (n *recordingNotifier) SaveFailed(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.saveErrs = append(n.saveErrs, err)
}

func (n *recordingNotifier) Submitted(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.submitted = append(n.submitted, id)
}

func (n *recordingNotifier) SubmitFailed(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.submitErrs = append(n.submitErrs, err)
}

func (n *recordingNotifier) counts() (saved, saveErrs, submitted, submitErrs int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.saved), len(n.saveErrs), len(n.submitted), len(n.submitErrs)
}

func setupWizard(t *testing.T, opts ...wizard.Option) (*wizard.Wizard, *mock.MockGateway, *recordingNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	gw := mock.NewMockGateway(ctrl)
	notifier := &recordingNotifier{}
	opts = append([]wizard.Option{
		wizard.WithDebounce(time.Hour), // flushed manually unless a test overrides
		wizard.WithNotifier(notifier),
	}, opts...)
	return wizard.New(gw, opts...), gw, notifier
}

func strPtr(s string) *string { return &s }

func TestNavigationBounds(t *testing.T) {
	w, _, _ := setupWizard(t)

	if err := w.Previous(); !errors.Is(err, wizard.ErrAtFirstStep) {
		t.Fatalf("expected ErrAtFirstStep, got %v", err)
	}
	for i := 0; i < 8; i++ {
		if err := w.Next(); err != nil {
			t.Fatalf("next at step %d: %v", i, err)
		}
	}
	if w.Step() != 8 {
		t.Fatalf("expected step 8, got %d", w.Step())
	}
	if err := w.Next(); !errors.Is(err, wizard.ErrAtLastStep) {
		t.Fatalf("expected ErrAtLastStep, got %v", err)
	}
	if err := w.GoTo(3); err != nil {
		t.Fatalf("goTo: %v", err)
	}
	if err := w.GoTo(9); !errors.Is(err, wizard.ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}
	if err := w.GoTo(-1); !errors.Is(err, wizard.ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}
}

func TestNavigationIgnoresValidationFailures(t *testing.T) {
	w, _, _ := setupWizard(t)

	// The opening section is empty and invalid, yet navigation proceeds.
	if errs := w.ValidateStep(); len(errs) == 0 {
		t.Fatal("expected the empty personal section to be invalid")
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if w.Step() != 1 {
		t.Fatalf("expected step 1, got %d", w.Step())
	}
}

func TestFirstFlushCreatesAndCapturesID(t *testing.T) {
	w, gw, notifier := setupWizard(t)
	id := uuid.New()

	gw.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app form.Application) (form.Application, error) {
			if app.Email != "a@x.com" {
				t.Fatalf("expected snapshot email, got %q", app.Email)
			}
			if app.FormStatus != form.StatusDraft {
				t.Fatalf("autosave must write drafts, got %q", app.FormStatus)
			}
			app.ID = id
			return app, nil
		})

	w.Apply(form.ApplicationInput{Email: strPtr("a@x.com")})
	w.Flush(context.Background())

	if w.ID() != id {
		t.Fatalf("expected captured id %s, got %s", id, w.ID())
	}
	saved, _, _, _ := notifier.counts()
	if saved != 1 {
		t.Fatalf("expected 1 saved notification, got %d", saved)
	}
}

func TestSubsequentFlushUpdatesByID(t *testing.T) {
	w, gw, _ := setupWizard(t)
	id := uuid.New()

	gw.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app form.Application) (form.Application, error) {
			app.ID = id
			return app, nil
		})
	gw.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, app form.Application) (form.Application, error) {
			if app.Email != "a@x.com" || app.Phone != "123" {
				t.Fatalf("update must carry the full snapshot, got %+v", app)
			}
			return app, nil
		})

	w.Apply(form.ApplicationInput{Email: strPtr("a@x.com")})
	w.Flush(context.Background())
	w.Apply(form.ApplicationInput{Phone: strPtr("123")})
	w.Flush(context.Background())
}

func TestDebounceCoalescesMutations(t *testing.T) {
	w, gw, _ := setupWizard(t, wizard.WithDebounce(30*time.Millisecond))

	done := make(chan struct{})
	gw.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app form.Application) (form.Application, error) {
			if app.Email != "a@x.com" || app.Phone != "123" {
				t.Errorf("expected both mutations in one write, got %+v", app)
			}
			app.ID = uuid.New()
			close(done)
			return app, nil
		})

	// Two mutations inside one debounce window produce a single write
	// carrying the latest snapshot.
	w.Apply(form.ApplicationInput{Email: strPtr("a@x.com")})
	w.Apply(form.ApplicationInput{Phone: strPtr("123")})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced save never fired")
	}
}

func TestStopCancelsPendingSave(t *testing.T) {
	w, _, _ := setupWizard(t, wizard.WithDebounce(20*time.Millisecond))

	// No gateway expectations: a stopped timer must not fire.
	w.Apply(form.ApplicationInput{Email: strPtr("a@x.com")})
	w.Stop()
	time.Sleep(80 * time.Millisecond)
}

func TestFailedSaveNotifiesAndNextFlushRetries(t *testing.T) {
	w, gw, notifier := setupWizard(t)
	id := uuid.New()

	gw.EXPECT().Create(gomock.Any(), gomock.Any()).Return(form.Application{}, errors.New("boom"))
	gw.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app form.Application) (form.Application, error) {
			app.ID = id
			return app, nil
		})

	w.Apply(form.ApplicationInput{Email: strPtr("a@x.com")})
	w.Flush(context.Background())

	if w.ID() != uuid.Nil {
		t.Fatal("failed create must not capture an id")
	}
	_, saveErrs, _, _ := notifier.counts()
	if saveErrs != 1 {
		t.Fatalf("expected 1 failure notification, got %d", saveErrs)
	}

	// Editing continues; the next cycle carries the latest snapshot.
	w.Apply(form.ApplicationInput{Phone: strPtr("123")})
	w.Flush(context.Background())
	if w.ID() != id {
		t.Fatalf("expected id captured on retry, got %s", w.ID())
	}
}

func TestSetPreviousTravelKeepsListConsistent(t *testing.T) {
	w, gw, _ := setupWizard(t)
	gw.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app form.Application) (form.Application, error) {
			app.ID = uuid.New()
			return app, nil
		}).AnyTimes()
	gw.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, app form.Application) (form.Application, error) {
			return app, nil
		}).AnyTimes()

	w.SetPreviousTravel(true)
	if snap := w.Snapshot(); !snap.PreviousUSTravel || len(snap.PreviousUSTravelDetails) != 1 {
		t.Fatalf("toggling on must seed one blank visit, got %+v", snap.PreviousUSTravelDetails)
	}

	visits := []form.Visit{{ArrivalDate: "2022-06-01", DepartureDate: "2022-06-15", LengthOfStay: 14}}
	w.Apply(form.ApplicationInput{PreviousUSTravelDetails: &visits})

	w.SetPreviousTravel(false)
	if snap := w.Snapshot(); snap.PreviousUSTravel || len(snap.PreviousUSTravelDetails) != 0 {
		t.Fatalf("toggling off must clear the visit list, got %+v", snap.PreviousUSTravelDetails)
	}

	// Toggling back on over the now-empty list seeds a fresh blank entry.
	w.SetPreviousTravel(true)
	if snap := w.Snapshot(); len(snap.PreviousUSTravelDetails) != 1 {
		t.Fatalf("expected one seeded visit, got %d", len(snap.PreviousUSTravelDetails))
	}
	w.Stop()
}

func TestSubmitPreconditions(t *testing.T) {
	w, gw, _ := setupWizard(t)
	ctx := context.Background()

	if _, err := w.Submit(ctx); !errors.Is(err, wizard.ErrNotOnReviewStep) {
		t.Fatalf("expected ErrNotOnReviewStep, got %v", err)
	}

	if err := w.GoTo(8); err != nil {
		t.Fatalf("goTo review: %v", err)
	}
	if _, err := w.Submit(ctx); !errors.Is(err, wizard.ErrNotCertified) {
		t.Fatalf("expected ErrNotCertified, got %v", err)
	}

	w.Certify(true)
	if _, err := w.Submit(ctx); !errors.Is(err, wizard.ErrNeverSaved) {
		t.Fatalf("expected ErrNeverSaved, got %v", err)
	}

	id := uuid.New()
	gw.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app form.Application) (form.Application, error) {
			app.ID = id
			return app, nil
		})
	gw.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, app form.Application) (form.Application, error) {
			if app.FormStatus != form.StatusSubmitted {
				t.Fatalf("submit must write status submitted, got %q", app.FormStatus)
			}
			return app, nil
		})

	w.Apply(form.ApplicationInput{Email: strPtr("a@x.com")})
	w.Flush(ctx)

	submitted, err := w.Submit(ctx)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if submitted.FormStatus != form.StatusSubmitted {
		t.Fatalf("expected submitted status, got %q", submitted.FormStatus)
	}
	if w.Snapshot().FormStatus != form.StatusSubmitted {
		t.Fatal("local record must flip to submitted on success")
	}
}

func TestSubmitFailureKeepsDraftAndNotifies(t *testing.T) {
	w, gw, notifier := setupWizard(t)
	ctx := context.Background()
	id := uuid.New()

	gw.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app form.Application) (form.Application, error) {
			app.ID = id
			return app, nil
		})
	gw.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(form.Application{}, errors.New("server down"))

	w.Apply(form.ApplicationInput{Email: strPtr("a@x.com")})
	w.Flush(ctx)
	if err := w.GoTo(8); err != nil {
		t.Fatalf("goTo review: %v", err)
	}
	w.Certify(true)

	if _, err := w.Submit(ctx); err == nil {
		t.Fatal("expected submit to fail")
	}
	if w.Snapshot().FormStatus != form.StatusDraft {
		t.Fatal("local record must stay in draft after a failed submit")
	}
	_, _, _, submitErrs := notifier.counts()
	if submitErrs != 1 {
		t.Fatalf("expected 1 submit failure notification, got %d", submitErrs)
	}
}

func TestLoadResumesExistingApplication(t *testing.T) {
	w, gw, _ := setupWizard(t)
	id := uuid.New()
	stored := form.NewDraft()
	stored.ID = id
	stored.LastName = "Okafor"

	gw.EXPECT().Get(gomock.Any(), id).Return(stored, nil)

	if err := w.Load(context.Background(), id); err != nil {
		t.Fatalf("load: %v", err)
	}
	if w.ID() != id {
		t.Fatalf("expected id %s, got %s", id, w.ID())
	}
	if w.Snapshot().LastName != "Okafor" {
		t.Fatal("loaded record not adopted")
	}
}
