package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/oakmart/storefront-api/internal/clock"
	"github.com/oakmart/storefront-api/internal/domain"
)

type CartStore interface {
	GetCartWithLines(ctx context.Context, customerID string) (domain.Cart, error)
	ClearLines(ctx context.Context, customerID string) error
}

type InventoryLedger interface {
	Get(ctx context.Context, sku string) (domain.InventoryRecord, error)
	ConditionalDecrement(ctx context.Context, sku string, qty int) (bool, error)
}

type PaymentProcessor interface {
	Charge(ctx context.Context, amount decimal.Decimal, currency, token string) (domain.PaymentOutcome, error)
}

type OrderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	GetOrderByID(ctx context.Context, id int64) (domain.Order, error)
}

// CheckoutService turns a customer's cart into a paid or failed order.
type CheckoutService struct {
	orders    OrderRepository
	carts     CartStore
	inventory InventoryLedger
	payments  PaymentProcessor
	clock     clock.Clock
	currency  string
}

const defaultCurrency = "USD"

func NewCheckoutService(
	orders OrderRepository,
	carts CartStore,
	inventory InventoryLedger,
	payments PaymentProcessor,
	clk clock.Clock,
	opts ...CheckoutServiceOption,
) *CheckoutService {
	svc := &CheckoutService{
		orders:    orders,
		carts:     carts,
		inventory: inventory,
		payments:  payments,
		clock:     clk,
		currency:  defaultCurrency,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type CheckoutServiceOption func(*CheckoutService)

// WithCurrency overrides the currency passed to the payment processor.
func WithCurrency(code string) CheckoutServiceOption {
	return func(s *CheckoutService) {
		if code != "" {
			s.currency = code
		}
	}
}

type CheckoutInput struct {
	CustomerID   string
	PaymentToken string
}

// Checkout runs the whole workflow inside one transaction: load the
// cart, reserve stock line by line, charge the payment token, insert
// the order with its line snapshots, and clear the cart. A failed line
// reservation aborts the transaction, rolling earlier decrements back.
//
// A declined payment is not an error: the order is persisted with
// status Failed, the cart is still cleared, and the stock reservation
// stays committed (the audit record wins over automatic release).
// Callers must inspect Order.Status.
func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (domain.Order, error) {
	if in.CustomerID == "" {
		return domain.Order{}, domain.ErrCustomerIDRequired
	}
	if in.PaymentToken == "" {
		return domain.Order{}, domain.ErrPaymentTokenRequired
	}

	now := s.clock.Now()
	var result domain.Order

	err := s.orders.WithTx(ctx, func(txCtx context.Context) error {
		cart, err := s.carts.GetCartWithLines(txCtx, in.CustomerID)
		if err != nil {
			return err
		}
		if len(cart.Lines) == 0 {
			return domain.ErrCartEmpty
		}

		// Totals come from the cart's price snapshots, not a live
		// catalog lookup; price changes after add-to-cart do not
		// affect an in-progress checkout.
		total := cart.Total()

		for _, line := range cart.Lines {
			ok, err := s.inventory.ConditionalDecrement(txCtx, line.SKU, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return &domain.InsufficientStockError{SKU: line.SKU}
			}
		}

		outcome, err := s.payments.Charge(txCtx, total, s.currency, in.PaymentToken)
		if err != nil {
			return err
		}

		order := domain.Order{
			CustomerID: in.CustomerID,
			Status:     domain.OrderStatusPaid,
			Total:      total,
			PaymentRef: outcome.ProviderRef,
			CreatedAt:  now,
			Lines:      orderLines(cart.Lines),
		}
		if !outcome.Succeeded {
			order.Status = domain.OrderStatusFailed
			order.PaymentRef = ""
		}

		persisted, err := s.orders.CreateOrder(txCtx, order)
		if err != nil {
			return err
		}
		if err := s.carts.ClearLines(txCtx, in.CustomerID); err != nil {
			return err
		}

		result = persisted
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return result, nil
}

// GetOrder returns a persisted order with its line snapshots.
func (s *CheckoutService) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	return s.orders.GetOrderByID(ctx, id)
}

// GetStock reports the current inventory record for a SKU.
func (s *CheckoutService) GetStock(ctx context.Context, sku string) (domain.InventoryRecord, error) {
	return s.inventory.Get(ctx, sku)
}

func orderLines(lines []domain.CartLine) []domain.OrderLine {
	out := make([]domain.OrderLine, len(lines))
	for i, line := range lines {
		out[i] = domain.OrderLine{
			SKU:       line.SKU,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		}
	}
	return out
}
