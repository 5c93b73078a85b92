package models

import "time"

// SiteContent is one editable section of the storefront (hero slides,
// featured banners, about text) managed from the admin dashboard.
type SiteContent struct {
	ID          int       `json:"id"`
	Section     string    `json:"section"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Content     string    `json:"content"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Catalogue is a downloadable product catalogue PDF.
type Catalogue struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	PDFURL      string    `json:"pdf_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
