package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart holds a customer's pending purchase.
type Cart struct {
	CustomerID string
	Lines      []CartLine
}

// CartLine snapshots name and unit price at add-to-cart time, so a
// later catalog price change does not affect an in-progress checkout.
type CartLine struct {
	SKU       string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	CreatedAt time.Time
}

// Total sums unit price times quantity across all lines.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
