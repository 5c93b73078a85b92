package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Image        string          `json:"image"`
	CloudinaryID string          `json:"cloudinary_id,omitempty"`
	InStock      bool            `json:"in_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type CategorySummary struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
