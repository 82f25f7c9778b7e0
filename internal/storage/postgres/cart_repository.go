package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/oakmart/storefront-api/internal/domain"
)

type CartRepository struct {
	q querier
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{q: querier{pool: pool}}
}

// GetCartWithLines returns the customer's cart. A customer with no
// lines gets an empty cart, not an error; emptiness is a business
// decision left to the service layer.
func (r *CartRepository) GetCartWithLines(ctx context.Context, customerID string) (domain.Cart, error) {
	const query = `
SELECT sku, name, unit_price::text, quantity, created_at
FROM cart_lines
WHERE customer_id = $1
ORDER BY created_at, id`

	rows, err := r.q.query(ctx, query, customerID)
	if err != nil {
		return domain.Cart{}, storageErr("get cart lines", err)
	}
	defer rows.Close()

	cart := domain.Cart{CustomerID: customerID}
	for rows.Next() {
		var line domain.CartLine
		var price string
		if err := rows.Scan(&line.SKU, &line.Name, &price, &line.Quantity, &line.CreatedAt); err != nil {
			return domain.Cart{}, storageErr("scan cart line", err)
		}
		line.UnitPrice, err = decimal.NewFromString(price)
		if err != nil {
			return domain.Cart{}, storageErr("parse cart line price", err)
		}
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return domain.Cart{}, storageErr("read cart lines", err)
	}
	return cart, nil
}

// UpsertLine adds a line, merging quantities when the customer already
// has that SKU. The existing snapshot name and price win on merge.
func (r *CartRepository) UpsertLine(ctx context.Context, customerID string, line domain.CartLine) error {
	const stmt = `
INSERT INTO cart_lines (customer_id, sku, name, unit_price, quantity, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (customer_id, sku)
DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity`

	_, err := r.q.exec(ctx, stmt, customerID, line.SKU, line.Name, line.UnitPrice.String(), line.Quantity, line.CreatedAt)
	if err != nil {
		return storageErr("upsert cart line", err)
	}
	return nil
}

func (r *CartRepository) ClearLines(ctx context.Context, customerID string) error {
	const stmt = `DELETE FROM cart_lines WHERE customer_id = $1`

	if _, err := r.q.exec(ctx, stmt, customerID); err != nil {
		return storageErr("clear cart lines", err)
	}
	return nil
}
