package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"promo-shop/cart"
	"promo-shop/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Business constants for order pricing. Shipping is waived at or above the
// threshold; tax applies to the subtotal only, never to shipping.
var (
	FreeShippingThreshold = decimal.NewFromInt(500)
	ShippingFee           = decimal.NewFromInt(50)
	TaxRate               = decimal.NewFromFloat(0.15)
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeOrderTotals derives the order pricing from the cart subtotal.
func ComputeOrderTotals(subtotal decimal.Decimal) OrderTotals {
	shipping := ShippingFee
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(TaxRate)

	return OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// OrderStore persists a completed order.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
}

// CartStore is the slice of the cart manager checkout needs: read the
// session's state and clear it once the order is safely stored.
type CartStore interface {
	Snapshot(ctx context.Context, sessionID string) cart.Snapshot
	Clear(ctx context.Context, sessionID string) cart.Snapshot
}

// OrderMailer sends the confirmation email. Delivery is best effort and
// never fails the order.
type OrderMailer interface {
	SendOrderConfirmation(toEmail string, order *models.Order) error
}

type CheckoutService struct {
	orders OrderStore
	carts  CartStore
	mailer OrderMailer
}

func NewCheckoutService(orders OrderStore, carts CartStore, mailer OrderMailer) *CheckoutService {
	return &CheckoutService{orders: orders, carts: carts, mailer: mailer}
}

// PlaceOrder turns the session's cart into a persisted order. The cart is
// cleared only after the order is stored; if persistence fails the cart is
// left exactly as it was so the customer can retry.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, userID int, email string, req models.CheckoutRequest) (*models.Order, error) {
	snap := s.carts.Snapshot(ctx, sessionID)
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}

	totals := ComputeOrderTotals(snap.Total)

	order := &models.Order{
		OrderNumber:     newOrderNumber(),
		UserID:          userID,
		Status:          models.OrderStatusPending,
		ShippingAddress: req.ShippingAddress.Address,
		City:            req.ShippingAddress.City,
		Province:        req.ShippingAddress.Province,
		PostalCode:      req.ShippingAddress.PostalCode,
		Country:         req.ShippingAddress.Country,
		PaymentMethod:   req.PaymentMethod,
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Tax:             totals.Tax,
		Total:           totals.Total,
	}
	for _, item := range snap.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.carts.Clear(ctx, sessionID)

	if s.mailer != nil && email != "" {
		if err := s.mailer.SendOrderConfirmation(email, order); err != nil {
			log.Println("checkout: failed to send confirmation email:", err)
		}
	}

	return order, nil
}

// CartSnapshot exposes the session's cart state for totals previews.
func (s *CheckoutService) CartSnapshot(ctx context.Context, sessionID string) cart.Snapshot {
	return s.carts.Snapshot(ctx, sessionID)
}

func newOrderNumber() string {
	return fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.NewString()[:8]))
}
