package app

import (
	"context"

	"github.com/oakmart/storefront-api/internal/clock"
	"github.com/oakmart/storefront-api/internal/domain"
)

type CartRepository interface {
	GetCartWithLines(ctx context.Context, customerID string) (domain.Cart, error)
	UpsertLine(ctx context.Context, customerID string, line domain.CartLine) error
	ClearLines(ctx context.Context, customerID string) error
}

type CatalogStore interface {
	GetProductBySKU(ctx context.Context, sku string) (domain.Product, error)
}

type CartService struct {
	carts   CartRepository
	catalog CatalogStore
	clock   clock.Clock
}

func NewCartService(carts CartRepository, catalog CatalogStore, clk clock.Clock) *CartService {
	return &CartService{
		carts:   carts,
		catalog: catalog,
		clock:   clk,
	}
}

type AddItemInput struct {
	CustomerID string
	SKU        string
	Quantity   int
}

// AddItem puts a line in the customer's cart, snapshotting the
// product's current name and price. Adding the same SKU again merges
// quantities and keeps the original snapshot.
func (s *CartService) AddItem(ctx context.Context, in AddItemInput) (domain.CartLine, error) {
	if in.CustomerID == "" {
		return domain.CartLine{}, domain.ErrCustomerIDRequired
	}
	if in.Quantity < 1 {
		return domain.CartLine{}, domain.ErrInvalidQuantity
	}

	product, err := s.catalog.GetProductBySKU(ctx, in.SKU)
	if err != nil {
		return domain.CartLine{}, err
	}

	line := domain.CartLine{
		SKU:       product.SKU,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  in.Quantity,
		CreatedAt: s.clock.Now(),
	}
	if err := s.carts.UpsertLine(ctx, in.CustomerID, line); err != nil {
		return domain.CartLine{}, err
	}
	return line, nil
}

func (s *CartService) GetCart(ctx context.Context, customerID string) (domain.Cart, error) {
	if customerID == "" {
		return domain.Cart{}, domain.ErrCustomerIDRequired
	}
	return s.carts.GetCartWithLines(ctx, customerID)
}

func (s *CartService) ClearCart(ctx context.Context, customerID string) error {
	if customerID == "" {
		return domain.ErrCustomerIDRequired
	}
	return s.carts.ClearLines(ctx, customerID)
}
