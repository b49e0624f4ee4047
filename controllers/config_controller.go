package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-store/models"
	"hardware-store/services"
)

type ConfigController struct {
	config *services.ConfigService
}

func NewConfigController(config *services.ConfigService) *ConfigController {
	return &ConfigController{config: config}
}

// @Summary Get store configuration
// @Tags Config
// @Produce json
// @Success 200 {object} models.StoreConfig
// @Router /config [get]
func (ctrl *ConfigController) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.config.Config())
}

// @Summary Save store configuration
// @Description Replaces the whole configuration (Admin)
// @Tags Config
// @Accept json
// @Produce json
// @Param request body models.StoreConfig true "Store configuration"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /config [post]
func (ctrl *ConfigController) SaveConfig(c *gin.Context) {
	var cfg models.StoreConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	err := ctrl.config.SaveConfig(c.Request.Context(), cfg)
	if errors.Is(err, services.ErrInvalidConfig) {
		errorJSON(c, http.StatusBadRequest, "Invalid configuration", err)
		return
	}
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "Error saving config", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Configuration saved", Data: ctrl.config.Config()})
}

// @Summary Theme variables
// @Description CSS custom properties derived from the store colors
// @Tags Config
// @Produce json
// @Success 200 {object} services.Theme
// @Router /config/theme [get]
func (ctrl *ConfigController) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.config.Theme())
}

// @Summary Theme stylesheet
// @Tags Config
// @Produce text/css
// @Success 200 {string} string
// @Router /config/theme.css [get]
func (ctrl *ConfigController) GetThemeCSS(c *gin.Context) {
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(ctrl.config.Theme().CSS()))
}
