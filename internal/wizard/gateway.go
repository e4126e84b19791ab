package wizard

import (
	"context"

	"github.com/google/uuid"
	"github.com/visaquest/visaquest-go/internal/domain/form"
)

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock

// Gateway is the narrow persistence surface the wizard writes through. The
// production implementation talks to the applications API over HTTP; tests
// substitute a mock. The gateway never retries; the next debounce cycle does.
type Gateway interface {
	Create(ctx context.Context, app form.Application) (form.Application, error)
	Get(ctx context.Context, id uuid.UUID) (form.Application, error)
	Update(ctx context.Context, id uuid.UUID, app form.Application) (form.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Notifier receives the outcome of background saves and of the submit
// action, the way the original UI surfaced toasts. Autosave failures are
// transient; submit failures get their own signal because the user asked
// for that write explicitly.
type Notifier interface {
	Saved(id uuid.UUID)
	SaveFailed(err error)
	Submitted(id uuid.UUID)
	SubmitFailed(err error)
}

type nopNotifier struct{}

func (nopNotifier) Saved(uuid.UUID)     {}
func (nopNotifier) SaveFailed(error)    {}
func (nopNotifier) Submitted(uuid.UUID) {}
func (nopNotifier) SubmitFailed(error)  {}
