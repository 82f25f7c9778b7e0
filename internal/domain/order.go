package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPaid   OrderStatus = "Paid"
	OrderStatusFailed OrderStatus = "Failed"
)

// Order is the immutable record of a checkout attempt that passed
// validation and stock reservation. A declined payment still produces
// an order, with status Failed.
type Order struct {
	ID         int64
	CustomerID string
	Status     OrderStatus
	Total      decimal.Decimal
	PaymentRef string
	CreatedAt  time.Time
	Lines      []OrderLine
}

// OrderLine is a decoupled snapshot, independent of any later change
// to product data.
type OrderLine struct {
	SKU       string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}
