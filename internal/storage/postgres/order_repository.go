package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/oakmart/storefront-api/internal/domain"
)

// OrderRepository persists immutable order records and owns the
// checkout commit boundary via WithTx.
type OrderRepository struct {
	pool *pgxpool.Pool
	q    querier
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool, q: querier{pool: pool}}
}

func (r *OrderRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// CreateOrder inserts the order and its line snapshots and returns the
// order with its DB-assigned id. Orders are never updated afterwards.
func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	const orderStmt = `
INSERT INTO orders (customer_id, status, total, payment_ref, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	var paymentRef *string
	if order.PaymentRef != "" {
		paymentRef = &order.PaymentRef
	}

	err := r.q.queryRow(ctx, orderStmt,
		order.CustomerID,
		order.Status,
		order.Total.String(),
		paymentRef,
		order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return domain.Order{}, storageErr("create order", err)
	}

	const lineStmt = `
INSERT INTO order_lines (order_id, sku, name, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5)`

	for _, line := range order.Lines {
		_, err := r.q.exec(ctx, lineStmt, order.ID, line.SKU, line.Name, line.UnitPrice.String(), line.Quantity)
		if err != nil {
			return domain.Order{}, storageErr("create order line", err)
		}
	}
	return order, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (domain.Order, error) {
	const orderQuery = `
SELECT id, customer_id, status, total::text, COALESCE(payment_ref, ''), created_at
FROM orders
WHERE id = $1`

	var o domain.Order
	var total string
	err := r.q.queryRow(ctx, orderQuery, id).
		Scan(&o.ID, &o.CustomerID, &o.Status, &total, &o.PaymentRef, &o.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, storageErr("get order", err)
	}
	o.Total, err = decimal.NewFromString(total)
	if err != nil {
		return domain.Order{}, storageErr("parse order total", err)
	}

	const lineQuery = `
SELECT sku, name, unit_price::text, quantity
FROM order_lines
WHERE order_id = $1
ORDER BY id`

	rows, err := r.q.query(ctx, lineQuery, id)
	if err != nil {
		return domain.Order{}, storageErr("get order lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.OrderLine
		var price string
		if err := rows.Scan(&line.SKU, &line.Name, &price, &line.Quantity); err != nil {
			return domain.Order{}, storageErr("scan order line", err)
		}
		line.UnitPrice, err = decimal.NewFromString(price)
		if err != nil {
			return domain.Order{}, storageErr("parse order line price", err)
		}
		o.Lines = append(o.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return domain.Order{}, storageErr("read order lines", err)
	}
	return o, nil
}
