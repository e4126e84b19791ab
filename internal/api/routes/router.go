package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/visaquest/visaquest-go/internal/api/handlers"
	"github.com/visaquest/visaquest-go/internal/application"
	"github.com/visaquest/visaquest-go/internal/repository"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	repos := repository.NewRepositories(db)
	services := application.New(repos)
	h := handlers.New(services)

	api := r.Group("/api")
	{
		applications := api.Group("/applications")
		{
			applications.GET("", h.Application.ListApplications)
			applications.POST("", h.Application.CreateApplication)
			applications.GET("/:id", h.Application.GetApplication)
			applications.PUT("/:id", h.Application.UpdateApplication)
			applications.DELETE("/:id", h.Application.DeleteApplication)
		}
	}
}
