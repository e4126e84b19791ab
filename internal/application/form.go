package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/visaquest/visaquest-go/internal/domain/form"
	"github.com/visaquest/visaquest-go/internal/domain/form/validate"
	"github.com/visaquest/visaquest-go/internal/repository"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

// ValidationError carries the per-field messages for a rejected write.
type ValidationError struct {
	Fields validate.FieldErrors
}

func (e *ValidationError) Error() string {
	paths := make([]string, 0, len(e.Fields))
	for p := range e.Fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return fmt.Sprintf("validation failed: %s", strings.Join(paths, ", "))
}

type FormService struct {
	Repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{Repos: repos}
}

func (s *FormService) ListApplications() ([]form.Application, error) {
	return s.Repos.Application.FindAll()
}

func (s *FormService) GetApplication(id uuid.UUID) (form.Application, error) {
	app, err := s.Repos.Application.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return form.Application{}, ErrApplicationNotFound
	}
	return app, err
}

// CreateApplication accepts a partial record: the first autosave fires long
// before the applicant has filled anything beyond the opening section.
func (s *FormService) CreateApplication(input form.ApplicationInput) (*form.Application, error) {
	app := form.NewDraft()
	input.ApplyTo(&app)
	if err := s.checkWritable(app); err != nil {
		return nil, err
	}
	if err := s.Repos.Application.Create(&app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *FormService) UpdateApplication(id uuid.UUID, input form.ApplicationInput) (*form.Application, error) {
	app, err := s.Repos.Application.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	input.ApplyTo(&app)
	if err := s.checkWritable(app); err != nil {
		return nil, err
	}
	if err := s.Repos.Application.Update(&app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *FormService) DeleteApplication(id uuid.UUID) error {
	err := s.Repos.Application.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrApplicationNotFound
	}
	return err
}

// checkWritable decides whether the merged record may be stored. Drafts only
// need their provided values to be well-formed; a record leaving draft state
// must satisfy every section's requiredness rules.
func (s *FormService) checkWritable(app form.Application) error {
	var errs validate.FieldErrors
	switch app.FormStatus {
	case form.StatusSubmitted, form.StatusCompleted:
		errs = validate.All(app)
	default:
		errs = validate.Draft(app)
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
