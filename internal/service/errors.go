package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers map these onto HTTP status
// codes; everything unclassified surfaces as a 500 through the error handler.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InsufficientStockError is returned when a sale requests more units than the
// product has on hand. Available carries the remaining stock for the client.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock: %d available", e.Available)
}

// TransactionError wraps a failure to apply both halves of a sale atomically.
// Neither write is visible, so the operation is safe to retry.
type TransactionError struct {
	Err error
}

func (e *TransactionError) Error() string {
	return "transaction failed: " + e.Err.Error()
}

func (e *TransactionError) Unwrap() error { return e.Err }
