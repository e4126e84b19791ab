package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/visaquest/visaquest-go/internal/domain/form"
)

// LocalGateway adapts the form service to the wizard's persistence gateway,
// for sessions running in the same process as the backend. Whole snapshots
// go through the same merge and validation path the HTTP surface uses.
type LocalGateway struct {
	svc *FormService
}

func NewLocalGateway(svc *FormService) *LocalGateway {
	return &LocalGateway{svc: svc}
}

func (g *LocalGateway) Create(_ context.Context, app form.Application) (form.Application, error) {
	created, err := g.svc.CreateApplication(form.SnapshotInput(app))
	if err != nil {
		return form.Application{}, err
	}
	return *created, nil
}

func (g *LocalGateway) Get(_ context.Context, id uuid.UUID) (form.Application, error) {
	return g.svc.GetApplication(id)
}

func (g *LocalGateway) Update(_ context.Context, id uuid.UUID, app form.Application) (form.Application, error) {
	updated, err := g.svc.UpdateApplication(id, form.SnapshotInput(app))
	if err != nil {
		return form.Application{}, err
	}
	return *updated, nil
}

func (g *LocalGateway) Delete(_ context.Context, id uuid.UUID) error {
	return g.svc.DeleteApplication(id)
}
