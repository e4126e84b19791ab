package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/visaquest/visaquest-go/internal/application"
	"github.com/visaquest/visaquest-go/internal/domain/form"
	"github.com/visaquest/visaquest-go/pkg/response"
)

type ApplicationHandler struct {
	svc *application.FormService
}

func NewApplicationHandler(svc *application.FormService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// ListApplications godoc
// @Summary List all visa applications
// @Tags applications
// @Produce json
// @Success 200 {array} form.Application
// @Failure 500 {object} response.ErrorResponse
// @Router /api/applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.svc.ListApplications()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// GetApplication godoc
// @Summary Fetch one application by ID
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} form.Application
// @Failure 404 {object} response.ErrorResponse
// @Router /api/applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	app, err := h.svc.GetApplication(id)
	if errors.Is(err, application.ErrApplicationNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Application not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// CreateApplication godoc
// @Summary Create an application from a partial or full record
// @Tags applications
// @Accept json
// @Produce json
// @Param input body form.ApplicationInput true "Application fields"
// @Success 201 {object} form.Application
// @Failure 400 {object} response.ErrorResponse
// @Router /api/applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var input form.ApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request body"})
		return
	}

	app, err := h.svc.CreateApplication(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// UpdateApplication godoc
// @Summary Update an application with a partial or full record
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param input body form.ApplicationInput true "Application fields"
// @Success 200 {object} form.Application
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input form.ApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request body"})
		return
	}

	app, err := h.svc.UpdateApplication(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// DeleteApplication godoc
// @Summary Delete an application
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := h.svc.DeleteApplication(id)
	if errors.Is(err, application.ErrApplicationNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Application not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Application deleted"})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Application not found"})
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(c *gin.Context, err error) {
	var verr *application.ValidationError
	switch {
	case errors.Is(err, application.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Application not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Validation failed", Fields: verr.Fields})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
