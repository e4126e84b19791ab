package application

import (
	"github.com/visaquest/visaquest-go/internal/repository"
)

type Services struct {
	Form *FormService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Form: NewFormService(repos),
	}
}
