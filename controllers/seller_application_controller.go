package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-store/models"
	"hardware-store/services"
)

type SellerApplicationController struct {
	sellers *services.SellerService
}

func NewSellerApplicationController(sellers *services.SellerService) *SellerApplicationController {
	return &SellerApplicationController{sellers: sellers}
}

// @Summary Submit seller application
// @Tags Seller Applications
// @Accept json
// @Produce json
// @Param request body models.SellerApplicationRequest true "Application form"
// @Success 201 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Router /seller-applications [post]
func (ctrl *SellerApplicationController) Submit(c *gin.Context) {
	var req models.SellerApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	app, err := ctrl.sellers.Submit(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error processing seller application: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Application submitted successfully",
		"applicationId": app.ID,
	})
}

// @Summary List seller applications
// @Tags Seller Applications
// @Produce json
// @Success 200 {object} models.SellerApplicationList
// @Router /seller-applications [get]
func (ctrl *SellerApplicationController) List(c *gin.Context) {
	list, err := ctrl.sellers.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching seller applications: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Update application status
// @Tags Seller Applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body models.UpdateApplicationStatusRequest true "Status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /seller-applications/{id} [patch]
func (ctrl *SellerApplicationController) UpdateStatus(c *gin.Context) {
	var req models.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	app, err := ctrl.sellers.UpdateStatus(c.Request.Context(), c.Param("id"), models.ApplicationStatus(req.Status))
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		errorJSON(c, http.StatusBadRequest, "Invalid status", nil)
		return
	case errors.Is(err, services.ErrApplicationNotFound):
		errorJSON(c, http.StatusNotFound, "Application not found", nil)
		return
	case err != nil:
		errorJSON(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Application status updated successfully",
		Data:    app,
	})
}
