package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-store/models"
	"hardware-store/services"
)

type OrderController struct {
	checkout *services.CheckoutService
	stats    *services.StatsService
}

func NewOrderController(checkout *services.CheckoutService, stats *services.StatsService) *OrderController {
	return &OrderController{checkout: checkout, stats: stats}
}

// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.HATEOASResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)

	status := models.OrderStatus(c.Query("status"))
	if status == "All" {
		status = ""
	}
	if status != "" && !status.Valid() {
		errorJSON(c, http.StatusBadRequest, "Invalid status", nil)
		return
	}

	orders, total, err := ctrl.checkout.Orders(c.Request.Context(), status, limit, offset)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}

	c.JSON(http.StatusOK, buildPaginatedResponse(c, "Orders retrieved successfully", orders, page, limit, total))
}

// @Summary Get order by ID
// @Description Get order details (Admin)
// @Tags Admin - Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.checkout.Order(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrOrderNotFound) {
		errorJSON(c, http.StatusNotFound, "Order not found", nil)
		return
	}
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "Failed to fetch order", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order retrieved successfully", Data: order})
}

// @Summary Dashboard stats
// @Description Product, user and order totals with paid revenue (Admin)
// @Tags Admin
// @Produce json
// @Success 200 {object} models.AdminStats
// @Router /admin/stats [get]
func (ctrl *OrderController) GetStats(c *gin.Context) {
	stats, err := ctrl.stats.Stats(c.Request.Context())
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
