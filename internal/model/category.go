package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is a label catalog for classifying products. Product.Category is a
// free string, not a foreign key, so deleting a category never touches products.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description *string
	CreatedAt   time.Time
}

func (Category) TableName() string { return "categories" }
