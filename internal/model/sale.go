package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is an immutable record of a completed sale. ProductID is a non-owning
// reference: the product may be deleted after the sale exists, so there is no
// FK constraint. Price is the unit price captured at sale time; Total is
// always price × quantity, computed server-side when the sale is recorded.
type Sale struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `gorm:"index"`
}
