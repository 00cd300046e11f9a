package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shirtstore/shirts-api/internal/models"
	"github.com/shirtstore/shirts-api/internal/services"
)

// ShirtController handles HTTP requests related to the shirt inventory
type ShirtController interface {
	// GetAllShirts retrieves all shirts
	GetAllShirts(c *gin.Context)
	// GetShirtByID retrieves a shirt by its ID
	GetShirtByID(c *gin.Context)
	// CreateShirt creates a new shirt
	CreateShirt(c *gin.Context)
	// UpdateShirt updates an existing shirt
	UpdateShirt(c *gin.Context)
	// DeleteShirt deletes a shirt by its ID
	DeleteShirt(c *gin.Context)
}

type shirtController struct {
	service services.ShirtService
}

// NewShirtController creates a new instance of ShirtController
func NewShirtController(service services.ShirtService) ShirtController {
	return &shirtController{service: service}
}

// GetAllShirts godoc
// @Summary Get all shirts
// @Description Get a list of all shirts in the inventory
// @Tags shirts
// @Accept json
// @Produce json
// @Success 200 {array} models.Shirt
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/shirts [get]
func (sc *shirtController) GetAllShirts(ctx *gin.Context) {
	shirts, err := sc.service.GetAllShirts()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve shirts"))
		return
	}
	ctx.JSON(http.StatusOK, shirts)
}

// GetShirtByID godoc
// @Summary Get shirt by ID
// @Description Get a single shirt by its ID
// @Tags shirts
// @Accept json
// @Produce json
// @Param id path int true "Shirt ID"
// @Success 200 {object} models.Shirt
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/shirts/{id} [get]
func (sc *shirtController) GetShirtByID(ctx *gin.Context) {
	id, err := shirtID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid shirt ID format"))
		return
	}

	shirt, err := sc.service.GetShirtByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrShirtNotFound, "Shirt not found"))
		return
	}
	ctx.JSON(http.StatusOK, shirt)
}

// CreateShirt godoc
// @Summary Create a new shirt
// @Description Create a new shirt with the input payload
// @Tags shirts
// @Accept json
// @Produce json
// @Param shirt body models.Shirt true "Shirt object"
// @Success 201 {object} models.Shirt
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/shirts [post]
func (sc *shirtController) CreateShirt(ctx *gin.Context) {
	var shirt models.Shirt
	if err := ctx.ShouldBindJSON(&shirt); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrShirtInvalidData, "Invalid request body"))
		return
	}

	created, err := sc.service.CreateShirt(shirt)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create shirt"))
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateShirt godoc
// @Summary Update a shirt
// @Description Update a shirt with the input payload
// @Tags shirts
// @Accept json
// @Produce json
// @Param id path int true "Shirt ID"
// @Param shirt body models.Shirt true "Shirt object"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/shirts/{id} [put]
func (sc *shirtController) UpdateShirt(ctx *gin.Context) {
	id, err := shirtID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid shirt ID format"))
		return
	}

	var shirt models.Shirt
	if err := ctx.ShouldBindJSON(&shirt); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrShirtInvalidData, "Invalid request body"))
		return
	}

	if _, err := sc.service.GetShirtByID(id); err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrShirtNotFound, "Shirt not found"))
		return
	}

	shirt.ShirtID = id
	if _, err := sc.service.UpdateShirt(shirt); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update shirt"))
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteShirt godoc
// @Summary Delete a shirt
// @Description Delete a shirt by its ID, returning the deleted record
// @Tags shirts
// @Accept json
// @Produce json
// @Param id path int true "Shirt ID"
// @Success 200 {object} models.Shirt
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/shirts/{id} [delete]
func (sc *shirtController) DeleteShirt(ctx *gin.Context) {
	id, err := shirtID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid shirt ID format"))
		return
	}

	deleted, err := sc.service.DeleteShirt(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrShirtNotFound, "Shirt not found"))
		return
	}
	ctx.JSON(http.StatusOK, deleted)
}

func shirtID(ctx *gin.Context) (int, error) {
	return strconv.Atoi(ctx.Param("id"))
}
