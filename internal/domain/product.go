package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The price here is the live price; cart
// and order lines carry their own snapshots.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
}
