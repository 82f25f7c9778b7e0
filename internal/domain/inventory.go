package domain

// InventoryRecord is the per-SKU stock counter. Quantity never goes
// negative; the checkout workflow only ever decreases it, through the
// ledger's conditional decrement.
type InventoryRecord struct {
	SKU      string
	Quantity int
}
