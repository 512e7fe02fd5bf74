package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable inventory item. SKU is the immutable business key;
// stock must stay >= 0 after every committed transaction.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU         string          `gorm:"uniqueIndex;not null"`
	Name        string          `gorm:"index;not null"`
	Category    string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
