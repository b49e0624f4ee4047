package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"hardware-store/models"
)

const (
	mercadoPagoAPI      = "https://api.mercadopago.com"
	mockCheckoutURL     = "https://www.mercadopago.com.ar/checkout/v1/redirect?pref_id="
	mockPaymentAmount   = 85000
	mockPaymentCurrency = "ARS"
)

// MercadoPagoClient talks to the MercadoPago REST API. Without an access
// token it answers with mock preferences and approved payments.
type MercadoPagoClient struct {
	token   string
	baseURL string
	http    *http.Client
	now     func() time.Time
}

func NewMercadoPagoClient(token string) *MercadoPagoClient {
	if token == "" {
		log.Println("[MercadoPago] MERCADOPAGO_ACCESS_TOKEN not configured, using mock payments")
	}
	return &MercadoPagoClient{
		token:   token,
		baseURL: mercadoPagoAPI,
		http:    &http.Client{Timeout: 15 * time.Second},
		now:     time.Now,
	}
}

// WithBaseURL points the client at another API host.
func (c *MercadoPagoClient) WithBaseURL(url string) *MercadoPagoClient {
	c.baseURL = url
	return c
}

func (c *MercadoPagoClient) Mock() bool {
	return c.token == ""
}

func (c *MercadoPagoClient) CreatePreference(ctx context.Context, pref models.PaymentPreference) (*models.PreferenceResult, error) {
	if c.Mock() {
		id := fmt.Sprintf("MP-%d", c.now().UnixMilli())
		return &models.PreferenceResult{ID: id, InitPoint: mockCheckoutURL + id}, nil
	}

	var result models.PreferenceResult
	if err := c.do(ctx, http.MethodPost, "/checkout/preferences", pref, &result); err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}
	return &result, nil
}

type paymentResponse struct {
	ID                json.Number         `json:"id"`
	Status            string              `json:"status"`
	TransactionAmount float64             `json:"transaction_amount"`
	CurrencyID        string              `json:"currency_id"`
	PaymentMethodID   string              `json:"payment_method_id"`
	Payer             models.PaymentPayer `json:"payer"`
	DateCreated       string              `json:"date_created"`
	DateApproved      string              `json:"date_approved"`
	ExternalReference string              `json:"external_reference"`
}

func (c *MercadoPagoClient) GetPayment(ctx context.Context, paymentID string) (*models.PaymentData, error) {
	if c.Mock() {
		now := c.now().UTC().Format(time.RFC3339)
		return &models.PaymentData{
			ID:                paymentID,
			Status:            "approved",
			TransactionAmount: mockPaymentAmount,
			CurrencyID:        mockPaymentCurrency,
			PaymentMethodID:   "visa",
			Payer:             models.PaymentPayer{Email: "customer@example.com"},
			DateCreated:       now,
			DateApproved:      now,
		}, nil
	}

	if _, err := strconv.ParseInt(paymentID, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid payment id %q", paymentID)
	}

	var resp paymentResponse
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &resp); err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &models.PaymentData{
		ID:                resp.ID.String(),
		Status:            resp.Status,
		TransactionAmount: resp.TransactionAmount,
		CurrencyID:        resp.CurrencyID,
		PaymentMethodID:   resp.PaymentMethodID,
		Payer:             resp.Payer,
		DateCreated:       resp.DateCreated,
		DateApproved:      resp.DateApproved,
		ExternalReference: resp.ExternalReference,
	}, nil
}

func (c *MercadoPagoClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("[MercadoPago] %s %s -> %d: %s", method, path, resp.StatusCode, msg)
		return fmt.Errorf("mercadopago responded %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
