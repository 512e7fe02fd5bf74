package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string          `json:"name"        validate:"required,min=2,max=120"`
	SKU         string          `json:"sku"         validate:"required,min=2,max=64"`
	Category    string          `json:"category"    validate:"required"`
	Price       decimal.Decimal `json:"price"       validate:"required"`
	Cost        decimal.Decimal `json:"cost"        validate:"required"`
	Stock       int             `json:"stock"       validate:"min=0"`
	Description *string         `json:"description"`
}

// UpdateProductRequest merges only the provided fields; SKU is immutable and
// deliberately absent.
type UpdateProductRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=2,max=120"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	Stock       *int             `json:"stock"       validate:"omitempty,min=0"`
	Description *string          `json:"description"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock"`
	Description *string         `json:"description"`
	CreatedAt   string          `json:"created_at"`
}
