package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-store/middleware"
	"hardware-store/services"
)

type PopupController struct {
	popups *services.PopupService
	config *services.ConfigService
}

func NewPopupController(popups *services.PopupService, config *services.ConfigService) *PopupController {
	return &PopupController{popups: popups, config: config}
}

// @Summary Next popup
// @Description First enabled popup the visitor has not dismissed yet, or null
// @Tags Popups
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /popups/next [get]
func (ctrl *PopupController) Next(c *gin.Context) {
	popup := ctrl.popups.Next(c.Request.Context(), middleware.CartOwnerFrom(c), ctrl.config.Popups())
	c.JSON(http.StatusOK, gin.H{"popup": popup})
}

// @Summary Mark popup shown
// @Tags Popups
// @Produce json
// @Param id path string true "Popup ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /popups/{id}/shown [post]
func (ctrl *PopupController) MarkShown(c *gin.Context) {
	id := c.Param("id")
	for _, p := range ctrl.config.Popups() {
		if p.ID == id {
			seen := ctrl.popups.MarkShown(c.Request.Context(), middleware.CartOwnerFrom(c), p)
			c.JSON(http.StatusOK, gin.H{"shown": seen})
			return
		}
	}
	errorJSON(c, http.StatusNotFound, "Popup not found", nil)
}
