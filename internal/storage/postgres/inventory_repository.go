package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oakmart/storefront-api/internal/domain"
)

// InventoryRepository is the stock ledger. The only mutation it offers
// is the conditional decrement used by checkout.
type InventoryRepository struct {
	q querier
}

func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{q: querier{pool: pool}}
}

func (r *InventoryRepository) Get(ctx context.Context, sku string) (domain.InventoryRecord, error) {
	const query = `SELECT sku, quantity FROM inventory WHERE sku = $1`

	var rec domain.InventoryRecord
	err := r.q.queryRow(ctx, query, sku).Scan(&rec.SKU, &rec.Quantity)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.InventoryRecord{}, domain.ErrProductNotFound
		}
		return domain.InventoryRecord{}, storageErr("get inventory", err)
	}
	return rec, nil
}

// ConditionalDecrement atomically takes qty units off the SKU's stock,
// succeeding only when enough remain. The predicate lives in the
// UPDATE itself, so concurrent callers racing on the same row cannot
// both win the last unit; an unknown SKU simply matches no row.
func (r *InventoryRepository) ConditionalDecrement(ctx context.Context, sku string, qty int) (bool, error) {
	const stmt = `UPDATE inventory SET quantity = quantity - $2 WHERE sku = $1 AND quantity >= $2`

	tag, err := r.q.exec(ctx, stmt, sku, qty)
	if err != nil {
		return false, storageErr("decrement inventory", err)
	}
	return tag.RowsAffected() == 1, nil
}
