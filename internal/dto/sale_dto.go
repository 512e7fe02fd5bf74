package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RecordSaleRequest is the body of POST /api/sales. The unit price is
// snapshotted into the sale; Total, when sent by older clients, is ignored —
// the server always recomputes price × quantity.
type RecordSaleRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid"`
	Quantity  int             `json:"quantity"  validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"     validate:"required"`
	Total     decimal.Decimal `json:"total"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt string          `json:"created_at"`
}
