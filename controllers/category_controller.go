package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-store/services"
)

type CategoryController struct {
	products *services.ProductService
}

func NewCategoryController(products *services.ProductService) *CategoryController {
	return &CategoryController{products: products}
}

// @Summary Get categories
// @Description List categories with their product counts
// @Tags Categories
// @Produce json
// @Success 200 {object} models.CategoryList
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	list, err := ctrl.products.Categories(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, list)
}
