package models

import "time"

// Product is a tracked Amazon product owned by a single user.
type Product struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	ASIN        *string   `json:"asin,omitempty"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateProductRequest is the JSON body for POST /api/products.
type CreateProductRequest struct {
	ASIN        *string  `json:"asin"`
	Title       string   `json:"title" validate:"required,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// UpdateProductRequest is the JSON body for PUT /api/products/{id}.
// A nil field means "leave unchanged", not "clear".
type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}
