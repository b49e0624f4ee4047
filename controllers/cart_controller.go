package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-store/middleware"
	"hardware-store/models"
	"hardware-store/services"
)

type CartController struct {
	carts    *services.CartService
	products *services.ProductService
}

func NewCartController(carts *services.CartService, products *services.ProductService) *CartController {
	return &CartController{carts: carts, products: products}
}

func (ctrl *CartController) respond(c *gin.Context, items []models.CartItem) {
	c.JSON(http.StatusOK, services.Summarize(items))
}

// @Summary Get cart
// @Description Items, total and item count of the visitor's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.CartSummary
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.carts.Summary(c.Request.Context(), middleware.CartOwnerFrom(c)))
}

// @Summary Add to cart
// @Description Adds one unit of a product, never beyond its stock
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product"
// @Success 200 {object} models.CartSummary
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	product, err := ctrl.products.GetByID(c.Request.Context(), req.ProductID)
	if errors.Is(err, services.ErrProductNotFound) {
		errorJSON(c, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	ctrl.respond(c, ctrl.carts.AddToCart(c.Request.Context(), middleware.CartOwnerFrom(c), *product))
}

// @Summary Update cart quantity
// @Description Sets the quantity, clamped to stock. Zero or less removes the item.
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.CartSummary
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	items := ctrl.carts.UpdateQuantity(c.Request.Context(), middleware.CartOwnerFrom(c), c.Param("productId"), req.Quantity)
	ctrl.respond(c, items)
}

// @Summary Remove from cart
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.CartSummary
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	ctrl.respond(c, ctrl.carts.RemoveFromCart(c.Request.Context(), middleware.CartOwnerFrom(c), c.Param("productId")))
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.CartSummary
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.respond(c, ctrl.carts.ClearCart(c.Request.Context(), middleware.CartOwnerFrom(c)))
}
