package model

import (
	"time"

	"github.com/google/uuid"
)

// Role values gating mutating operations.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User stores system users with role-based access.
// Role: "admin" | "staff"
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'staff'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
