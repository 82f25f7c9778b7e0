package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/oakmart/storefront-api/internal/domain"
)

type CatalogRepository struct {
	q querier
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{q: querier{pool: pool}}
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const query = `
SELECT id, sku, name, description, price::text, created_at
FROM products
ORDER BY sku`

	rows, err := r.q.query(ctx, query)
	if err != nil {
		return nil, storageErr("list products", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("read products", err)
	}
	return products, nil
}

func (r *CatalogRepository) GetProductBySKU(ctx context.Context, sku string) (domain.Product, error) {
	const query = `
SELECT id, sku, name, description, price::text, created_at
FROM products
WHERE sku = $1`

	row := r.q.queryRow(ctx, query, sku)
	p, err := scanProduct(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	var price string
	if err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &price, &p.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return domain.Product{}, err
		}
		return domain.Product{}, storageErr("scan product", err)
	}
	var err error
	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return domain.Product{}, storageErr("parse product price", err)
	}
	return p, nil
}
