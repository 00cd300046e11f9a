package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shirtstore/shirts-api/internal/models"
	"github.com/shirtstore/shirts-api/internal/services"
	log "github.com/sirupsen/logrus"
)

// ApplicationController handles client application registration
type ApplicationController struct {
	service *services.ApplicationService
}

func NewApplicationController(service *services.ApplicationService) *ApplicationController {
	return &ApplicationController{service: service}
}

// RegisterApplication godoc
// @Summary Register a client application
// @Description Registers a new API client and returns its clientId and secret. The secret is shown exactly once and never stored.
// @Tags applications
// @Accept json
// @Produce json
// @Param application body object true "Application name and scopes"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.APIError
// @Router /api/applications/register [post]
func (ac *ApplicationController) RegisterApplication(c *gin.Context) {
	var req struct {
		ApplicationName string `json:"applicationName" binding:"required"`
		Scopes          string `json:"scopes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	app, rawSecret, err := ac.service.RegisterApplication(c.Request.Context(), req.ApplicationName, req.Scopes)
	if err != nil {
		log.WithError(err).Error("Failed to register application")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to register application"))
		return
	}

	// The raw secret is returned here, once
	c.JSON(http.StatusOK, gin.H{
		"applicationName": app.ApplicationName,
		"clientId":        app.ClientID,
		"secret":          rawSecret,
		"scopes":          app.Scopes,
	})
}
