package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              int             `json:"id"`
	OrderNumber     string          `json:"order_number"`
	UserID          int             `json:"user_id"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	City            string          `json:"city"`
	Province        string          `json:"province"`
	PostalCode      string          `json:"postal_code"`
	Country         string          `json:"country"`
	PaymentMethod   string          `json:"payment_method"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	Items           []OrderItem     `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID        int             `json:"id"`
	OrderID   int             `json:"order_id"`
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)
