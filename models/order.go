package models

import (
	"encoding/json"
	"time"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Paid reports whether an order in this status counts toward revenue.
func (s OrderStatus) Paid() bool {
	switch s {
	case OrderProcessing, OrderShipped, OrderDelivered:
		return true
	case OrderPending, OrderCancelled:
		return false
	}
	return false
}

type Order struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId"`
	Items        []CartItem  `json:"items"`
	Total        int64       `json:"total"`
	Status       OrderStatus `json:"status"`
	PreferenceID string      `json:"preferenceId,omitempty"`
	PaymentID    string      `json:"paymentId,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type PaymentPayer struct {
	Email string `json:"email"`
}

type PaymentData struct {
	ID                string       `json:"id"`
	Status            string       `json:"status"`
	TransactionAmount float64      `json:"transaction_amount"`
	CurrencyID        string       `json:"currency_id"`
	PaymentMethodID   string       `json:"payment_method_id"`
	Payer             PaymentPayer `json:"payer"`
	DateCreated       string       `json:"date_created"`
	DateApproved      string       `json:"date_approved,omitempty"`
	ExternalReference string       `json:"external_reference,omitempty"`
}

// OrderStatus maps a payment provider status onto the order lifecycle.
func (p PaymentData) OrderStatus() OrderStatus {
	switch p.Status {
	case "approved", "authorized":
		return OrderProcessing
	case "rejected", "cancelled", "refunded", "charged_back":
		return OrderCancelled
	default:
		return OrderPending
	}
}

type PreferenceItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	CurrencyID string `json:"currency_id"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type PaymentPreference struct {
	Items             []PreferenceItem `json:"items"`
	Payer             PaymentPayer     `json:"payer"`
	BackURLs          BackURLs         `json:"back_urls"`
	AutoReturn        string           `json:"auto_return"`
	ExternalReference string           `json:"external_reference,omitempty"`
}

type PreferenceResult struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type CheckoutResponse struct {
	PreferenceID  string `json:"preferenceId"`
	PreferenceURL string `json:"preferenceUrl"`
	Total         int64  `json:"total"`
	OrderID       string `json:"orderId"`
}

// PaymentNotification is the webhook body posted by the payment provider.
type PaymentNotification struct {
	Type string `json:"type"`
	Data struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}
