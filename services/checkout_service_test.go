package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"promo-shop/cart"
	"promo-shop/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderStore struct {
	orders []*models.Order
	err    error
}

func (f *fakeOrderStore) Create(ctx context.Context, order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	order.ID = len(f.orders) + 1
	f.orders = append(f.orders, order)
	return nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendOrderConfirmation(toEmail string, order *models.Order) error {
	f.sent = append(f.sent, toEmail)
	return f.err
}

func checkoutRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		ShippingAddress: models.ShippingAddressRequest{
			Address:    "12 Long Street",
			City:       "Cape Town",
			Province:   "Western Cape",
			PostalCode: "8001",
			Country:    "South Africa",
		},
		PaymentMethod: "card",
	}
}

func seededCarts(t *testing.T, sessionID, price string, qty int) *cart.Manager {
	t.Helper()
	m := cart.NewManager(nil, time.Hour)
	m.Add(context.Background(), sessionID, cart.Product{
		ID:    1,
		Name:  "Branded Cap",
		Price: decimal.RequireFromString(price),
	}, qty)
	return m
}

func TestComputeOrderTotalsBelowThreshold(t *testing.T) {
	totals := ComputeOrderTotals(decimal.NewFromInt(400))

	assert.True(t, totals.Shipping.Equal(decimal.NewFromInt(50)), "shipping should be flat 50 under the threshold")
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(60)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(510)))
}

func TestComputeOrderTotalsAtAndAboveThreshold(t *testing.T) {
	at := ComputeOrderTotals(decimal.NewFromInt(500))
	assert.True(t, at.Shipping.IsZero(), "threshold is inclusive")

	above := ComputeOrderTotals(decimal.NewFromInt(600))
	assert.True(t, above.Shipping.IsZero())
	assert.True(t, above.Tax.Equal(decimal.NewFromInt(90)))
	assert.True(t, above.Total.Equal(decimal.NewFromInt(690)))
}

func TestComputeOrderTotalsTaxExcludesShipping(t *testing.T) {
	totals := ComputeOrderTotals(decimal.NewFromInt(100))

	// 15% of 100, not of 150.
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(15)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(165)))
}

func TestPlaceOrderClearsCartOnSuccess(t *testing.T) {
	ctx := context.Background()
	carts := seededCarts(t, "s1", "200", 2)
	store := &fakeOrderStore{}
	mailer := &fakeMailer{}
	svc := NewCheckoutService(store, carts, mailer)

	order, err := svc.PlaceOrder(ctx, "s1", 7, "buyer@example.com", checkoutRequest())
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(400)))
	assert.True(t, order.Shipping.Equal(decimal.NewFromInt(50)))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(510)))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.Empty(t, carts.Snapshot(ctx, "s1").Items, "cart must be cleared after a stored order")
	assert.Equal(t, []string{"buyer@example.com"}, mailer.sent)
}

func TestPlaceOrderKeepsCartOnFailure(t *testing.T) {
	ctx := context.Background()
	carts := seededCarts(t, "s1", "200", 2)
	store := &fakeOrderStore{err: errors.New("db down")}
	svc := NewCheckoutService(store, carts, &fakeMailer{})

	_, err := svc.PlaceOrder(ctx, "s1", 7, "buyer@example.com", checkoutRequest())
	require.Error(t, err)

	snap := carts.Snapshot(ctx, "s1")
	require.Len(t, snap.Items, 1, "a failed submission must not touch the cart")
	assert.Equal(t, 2, snap.ItemCount)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	carts := cart.NewManager(nil, time.Hour)
	svc := NewCheckoutService(&fakeOrderStore{}, carts, nil)

	_, err := svc.PlaceOrder(context.Background(), "empty", 1, "x@y.z", checkoutRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderSurvivesMailerFailure(t *testing.T) {
	ctx := context.Background()
	carts := seededCarts(t, "s1", "600", 1)
	store := &fakeOrderStore{}
	mailer := &fakeMailer{err: errors.New("smtp refused")}
	svc := NewCheckoutService(store, carts, mailer)

	order, err := svc.PlaceOrder(ctx, "s1", 7, "buyer@example.com", checkoutRequest())
	require.NoError(t, err)
	assert.True(t, order.Shipping.IsZero())
	assert.Empty(t, carts.Snapshot(ctx, "s1").Items)
}

func TestOrderNumberFormat(t *testing.T) {
	n := newOrderNumber()
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, n)
	assert.NotEqual(t, n, newOrderNumber())
}
