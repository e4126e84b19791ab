package handlers

import (
	"github.com/visaquest/visaquest-go/internal/application"
)

type Handlers struct {
	Application *ApplicationHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Application: NewApplicationHandler(svc.Form),
	}
}
