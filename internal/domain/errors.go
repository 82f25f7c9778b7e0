package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCartEmpty            = errors.New("cart is empty")
	ErrCustomerIDRequired   = errors.New("customer id required")
	ErrPaymentTokenRequired = errors.New("payment token required")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrProductNotFound      = errors.New("product not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidID            = errors.New("invalid id")
)

// InsufficientStockError reports the first cart line whose reservation
// could not be satisfied. An unknown SKU is reported the same way.
type InsufficientStockError struct {
	SKU string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for sku %q", e.SKU)
}

// StorageError marks persistence/infrastructure failures. Unlike
// business errors these are retryable by the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
