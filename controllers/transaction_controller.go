package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-store/middleware"
	"hardware-store/models"
	"hardware-store/services"
)

type TransactionController struct {
	checkout *services.CheckoutService
}

func NewTransactionController(checkout *services.CheckoutService) *TransactionController {
	return &TransactionController{checkout: checkout}
}

// @Summary Checkout
// @Description Creates a MercadoPago preference for the given items and records a pending order
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Items"
// @Success 200 {object} models.CheckoutResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *TransactionController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := ctrl.checkout.Checkout(c.Request.Context(), middleware.CurrentUser(c), req.Items)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		errorJSON(c, http.StatusBadRequest, "No items in cart", nil)
		return
	case errors.Is(err, services.ErrProductNotFound), errors.Is(err, services.ErrInsufficientStock):
		errorJSON(c, http.StatusBadRequest, err.Error(), nil)
		return
	case err != nil:
		log.Printf("Error creating checkout: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Payment status
// @Tags Transactions
// @Produce json
// @Param payment_id query string true "Payment ID"
// @Success 200 {object} models.PaymentData
// @Failure 400 {object} models.ErrorResponse
// @Router /payment-status [get]
func (ctrl *TransactionController) PaymentStatus(c *gin.Context) {
	payment, err := ctrl.checkout.PaymentStatus(c.Request.Context(), c.Query("payment_id"))
	if errors.Is(err, services.ErrPaymentIDRequired) {
		errorJSON(c, http.StatusBadRequest, "Payment ID is required", nil)
		return
	}
	if err != nil {
		log.Printf("Error fetching payment status: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// @Summary MercadoPago webhook
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body models.PaymentNotification true "Notification"
// @Success 200 {object} map[string]bool
// @Router /mercadopago/webhook [post]
func (ctrl *TransactionController) Webhook(c *gin.Context) {
	var body models.PaymentNotification
	if err := c.ShouldBindJSON(&body); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	log.Printf("MercadoPago webhook received: type=%s id=%s", body.Type, body.Data.ID)

	ctrl.handleNotification(c, body.Type, body.Data.ID.String())
}

// @Summary MercadoPago webhook (query form)
// @Tags Transactions
// @Produce json
// @Param type query string false "Notification type"
// @Param topic query string false "Notification topic"
// @Param data.id query string false "Payment ID"
// @Param id query string false "Payment ID"
// @Success 200 {object} map[string]bool
// @Router /mercadopago/webhook [get]
func (ctrl *TransactionController) WebhookQuery(c *gin.Context) {
	kind := c.Query("type")
	if kind == "" {
		kind = c.Query("topic")
	}
	id := c.Query("data.id")
	if id == "" {
		id = c.Query("id")
	}

	ctrl.handleNotification(c, kind, id)
}

func (ctrl *TransactionController) handleNotification(c *gin.Context, kind, id string) {
	if err := ctrl.checkout.HandleNotification(c.Request.Context(), kind, id); err != nil {
		log.Printf("Error processing webhook: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
