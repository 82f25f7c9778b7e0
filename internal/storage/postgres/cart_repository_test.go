package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oakmart/storefront-api/internal/domain"
	"github.com/oakmart/storefront-api/internal/storage/postgres"
	"github.com/oakmart/storefront-api/internal/testutil"
)

func TestCartRepository_UpsertAndGet(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := postgres.NewCartRepository(pool)

	t.Run("empty cart is not an error", func(t *testing.T) {
		cart, err := repo.GetCartWithLines(ctx, "cust-empty")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Lines) != 0 {
			t.Fatalf("expected no lines, got %d", len(cart.Lines))
		}
		if cart.CustomerID != "cust-empty" {
			t.Fatalf("unexpected customer id %q", cart.CustomerID)
		}
	})

	addedAt := time.Date(2026, 8, 14, 10, 30, 0, 0, time.UTC)

	t.Run("insert then read restores the snapshot", func(t *testing.T) {
		line := domain.CartLine{
			SKU:       "MUG-01",
			Name:      "Mug",
			UnitPrice: decimal.RequireFromString("9.50"),
			Quantity:  2,
			CreatedAt: addedAt,
		}
		if err := repo.UpsertLine(ctx, "cust-1", line); err != nil {
			t.Fatalf("upsert: %v", err)
		}

		cart, err := repo.GetCartWithLines(ctx, "cust-1")
		if err != nil {
			t.Fatalf("get cart: %v", err)
		}
		if len(cart.Lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(cart.Lines))
		}
		got := cart.Lines[0]
		if got.SKU != "MUG-01" || got.Name != "Mug" || got.Quantity != 2 {
			t.Fatalf("unexpected line: %+v", got)
		}
		if !got.UnitPrice.Equal(decimal.RequireFromString("9.50")) {
			t.Fatalf("expected unit price 9.50, got %s", got.UnitPrice)
		}
		// The time returned at add time and the row read back later
		// must agree.
		if !got.CreatedAt.Equal(addedAt) {
			t.Fatalf("expected created_at %s, got %s", addedAt, got.CreatedAt)
		}
	})

	t.Run("same sku merges quantity, keeps original snapshot", func(t *testing.T) {
		line := domain.CartLine{
			SKU:       "MUG-01",
			Name:      "Mug (renamed)",
			UnitPrice: decimal.RequireFromString("11.00"),
			Quantity:  3,
			CreatedAt: addedAt.Add(time.Hour),
		}
		if err := repo.UpsertLine(ctx, "cust-1", line); err != nil {
			t.Fatalf("upsert: %v", err)
		}

		cart, err := repo.GetCartWithLines(ctx, "cust-1")
		if err != nil {
			t.Fatalf("get cart: %v", err)
		}
		if len(cart.Lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(cart.Lines))
		}
		got := cart.Lines[0]
		if got.Quantity != 5 {
			t.Fatalf("expected merged quantity 5, got %d", got.Quantity)
		}
		if got.Name != "Mug" || !got.UnitPrice.Equal(decimal.RequireFromString("9.50")) {
			t.Fatalf("expected original snapshot to win, got %+v", got)
		}
		if !got.CreatedAt.Equal(addedAt) {
			t.Fatalf("expected original created_at to win, got %s", got.CreatedAt)
		}
	})

	t.Run("carts are per customer", func(t *testing.T) {
		cart, err := repo.GetCartWithLines(ctx, "cust-2")
		if err != nil {
			t.Fatalf("get cart: %v", err)
		}
		if len(cart.Lines) != 0 {
			t.Fatalf("expected no lines for other customer, got %d", len(cart.Lines))
		}
	})
}

func TestCartRepository_ClearLines(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)
	testutil.InsertCartLine(t, ctx, pool, "cust-1", "MUG-01", "Mug", "9.50", 2)
	testutil.InsertCartLine(t, ctx, pool, "cust-1", "TEE-01", "Tee", "15.00", 1)
	testutil.InsertCartLine(t, ctx, pool, "cust-2", "MUG-01", "Mug", "9.50", 1)

	repo := postgres.NewCartRepository(pool)

	if err := repo.ClearLines(ctx, "cust-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := testutil.CartLineCount(t, ctx, pool, "cust-1"); got != 0 {
		t.Fatalf("expected cart cleared, got %d lines", got)
	}
	if got := testutil.CartLineCount(t, ctx, pool, "cust-2"); got != 1 {
		t.Fatalf("expected other customer untouched, got %d lines", got)
	}

	// Clearing an already empty cart is fine.
	if err := repo.ClearLines(ctx, "cust-1"); err != nil {
		t.Fatalf("clear empty cart: %v", err)
	}
}

func TestCartRepository_ClearRollsBackWithTx(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)
	testutil.InsertCartLine(t, ctx, pool, "cust-1", "MUG-01", "Mug", "9.50", 2)

	orders := postgres.NewOrderRepository(pool)
	carts := postgres.NewCartRepository(pool)

	wantErr := context.Canceled
	err := orders.WithTx(ctx, func(txCtx context.Context) error {
		if err := carts.ClearLines(txCtx, "cust-1"); err != nil {
			return err
		}
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("expected abort error, got %v", err)
	}
	if got := testutil.CartLineCount(t, ctx, pool, "cust-1"); got != 1 {
		t.Fatalf("expected cart line restored, got %d", got)
	}
}
