package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hardware-store/libs"
	"hardware-store/models"
	"hardware-store/repositories"
)

var (
	ErrEmptyCart         = errors.New("no items in cart")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPaymentIDRequired = errors.New("payment id is required")
	ErrOrderNotFound     = errors.New("order not found")
)

const checkoutCurrency = "ARS"

type PaymentGateway interface {
	CreatePreference(ctx context.Context, pref models.PaymentPreference) (*models.PreferenceResult, error)
	GetPayment(ctx context.Context, paymentID string) (*models.PaymentData, error)
}

type CheckoutService struct {
	gateway  PaymentGateway
	orders   repositories.OrderRepository
	products repositories.ProductRepository
	mailer   libs.Mailer
	config   *ConfigService
	appURL   string
}

func NewCheckoutService(
	gateway PaymentGateway,
	orders repositories.OrderRepository,
	products repositories.ProductRepository,
	mailer libs.Mailer,
	config *ConfigService,
	appURL string,
) *CheckoutService {
	return &CheckoutService{
		gateway:  gateway,
		orders:   orders,
		products: products,
		mailer:   mailer,
		config:   config,
		appURL:   appURL,
	}
}

// Checkout prices the requested items from the catalog, opens a payment
// preference for them and records a pending order referenced by the
// preference.
func (s *CheckoutService) Checkout(ctx context.Context, user *models.User, items []models.CheckoutItemRequest) (*models.CheckoutResponse, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Items:  make([]models.CartItem, 0, len(items)),
		Status: models.OrderPending,
	}
	prefItems := make([]models.PreferenceItem, 0, len(items))

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity for product %s", item.ID)
		}

		product, err := s.products.FindByID(ctx, item.ID)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, item.ID)
		}
		if err != nil {
			return nil, err
		}
		if item.Quantity > product.Stock {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
		}

		order.Items = append(order.Items, models.CartItem{Product: *product, Quantity: item.Quantity})
		order.Total += product.Price * int64(item.Quantity)
		prefItems = append(prefItems, models.PreferenceItem{
			ID:         product.ID,
			Title:      product.Name,
			UnitPrice:  product.Price,
			Quantity:   item.Quantity,
			CurrencyID: checkoutCurrency,
		})
	}

	pref, err := s.gateway.CreatePreference(ctx, models.PaymentPreference{
		Items: prefItems,
		Payer: models.PaymentPayer{Email: user.Email},
		BackURLs: models.BackURLs{
			Success: s.appURL + "/success",
			Failure: s.appURL + "/failure",
			Pending: s.appURL + "/pending",
		},
		AutoReturn:        "approved",
		ExternalReference: order.ID,
	})
	if err != nil {
		return nil, err
	}

	order.PreferenceID = pref.ID
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	log.Printf("Order created: %s user=%s total=%d preference=%s", order.ID, order.UserID, order.Total, order.PreferenceID)

	s.notify(user.Email, order)

	return &models.CheckoutResponse{
		PreferenceID:  pref.ID,
		PreferenceURL: pref.InitPoint,
		Total:         order.Total,
		OrderID:       order.ID,
	}, nil
}

func (s *CheckoutService) notify(to string, order *models.Order) {
	if s.mailer == nil || to == "" {
		return
	}
	subject, body := libs.OrderConfirmationEmail(s.storeName(), order)
	if err := s.mailer.Send(to, subject, body); err != nil {
		log.Printf("[Mail] order confirmation for %s failed: %v", order.ID, err)
	}
}

func (s *CheckoutService) storeName() string {
	if s.config == nil {
		return models.DefaultStoreConfig().StoreName
	}
	return s.config.Config().StoreName
}

func (s *CheckoutService) PaymentStatus(ctx context.Context, paymentID string) (*models.PaymentData, error) {
	if paymentID == "" {
		return nil, ErrPaymentIDRequired
	}
	return s.gateway.GetPayment(ctx, paymentID)
}

// HandleNotification reacts to a provider webhook. Only payment events are
// looked up; the referenced order takes the payment's status.
func (s *CheckoutService) HandleNotification(ctx context.Context, kind, paymentID string) error {
	if kind != "payment" || paymentID == "" {
		return nil
	}

	payment, err := s.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return err
	}
	log.Printf("[MercadoPago] Payment %s status: %s", payment.ID, payment.Status)

	if payment.ExternalReference == "" {
		return nil
	}
	err = s.orders.UpdatePayment(ctx, payment.ExternalReference, payment.ID, payment.OrderStatus())
	if errors.Is(err, repositories.ErrNotFound) {
		log.Printf("[MercadoPago] Payment %s references unknown order %s", payment.ID, payment.ExternalReference)
		return nil
	}
	return err
}

func (s *CheckoutService) Order(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

func (s *CheckoutService) Orders(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int, error) {
	return s.orders.List(ctx, status, limit, offset)
}
